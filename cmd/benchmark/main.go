// Command benchmark measures per-tool latency against an in-process mock
// upstream. It needs no API key and makes no network calls, so it is safe
// to run anywhere.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"time"

	"github.com/AlexLin1234/smithsonian-mcp-server/internal/openaccess"
)

const iterations = 200

func main() {
	fmt.Println("Smithsonian MCP Server - Latency Measurements")
	fmt.Println("=============================================")
	fmt.Println()

	upstream := httptest.NewServer(http.HandlerFunc(mockUpstream))
	defer upstream.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := openaccess.NewClient(&openaccess.Config{
		APIKey:    "benchmark-key",
		BaseURL:   upstream.URL,
		Timeout:   5 * time.Second,
		UserAgent: openaccess.DefaultUserAgent,
	}, openaccess.WithLogger(logger))

	ctx := context.Background()

	measure("search_collection", func() error {
		_, err := client.SearchCollectionMCP(ctx, openaccess.SearchCollectionArgs{Query: "wright flyer", Rows: 10})
		return err
	})

	measure("get_item", func() error {
		_, err := client.GetItemMCP(ctx, openaccess.GetItemArgs{ItemID: "edanmdm-NASM_A19600093000"})
		return err
	})

	measure("get_category_terms", func() error {
		_, err := client.GetCategoryTermsMCP(ctx, openaccess.GetCategoryTermsArgs{Category: "topic", StartsWith: "A"})
		return err
	})

	fmt.Println("Figures cover client-side work only: query encoding, HTTP over")
	fmt.Println("loopback, JSON decoding, and result projection. Live calls add")
	fmt.Println("api.si.edu round-trip time on top.")
}

// measure runs fn repeatedly and prints a latency distribution.
func measure(name string, fn func() error) {
	// warm up connection pool
	for i := 0; i < 5; i++ {
		if err := fn(); err != nil {
			fmt.Printf("%s: error during warmup: %v\n", name, err)
			return
		}
	}

	durations := make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if err := fn(); err != nil {
			fmt.Printf("%s: error at iteration %d: %v\n", name, i, err)
			return
		}
		durations = append(durations, time.Since(start))
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var total time.Duration
	for _, d := range durations {
		total += d
	}

	fmt.Printf("%s (%d iterations):\n", name, iterations)
	fmt.Printf("  mean: %v\n", total/time.Duration(len(durations)))
	fmt.Printf("  p50:  %v\n", durations[len(durations)/2])
	fmt.Printf("  p95:  %v\n", durations[len(durations)*95/100])
	fmt.Printf("  max:  %v\n", durations[len(durations)-1])
	fmt.Println()
}

// mockUpstream serves canned Open Access responses.
func mockUpstream(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/search":
		_, _ = w.Write([]byte(`{
			"status": 200,
			"response": {
				"rowCount": 1,
				"rows": [{
					"id": "edanmdm-NASM_A19600093000",
					"title": "1903 Wright Flyer",
					"unitCode": "NASM",
					"content": {
						"descriptiveNonRepeating": {
							"record_link": "https://airandspace.si.edu/collection-objects/flyer",
							"online_media": {"mediaCount": 1, "media": [{"type": "Images", "content": "https://ids.si.edu/1"}]}
						},
						"freetext": {"date": [{"label": "Date", "content": "1903"}]}
					}
				}]
			}
		}`))
	case len(r.URL.Path) > 9 && r.URL.Path[:9] == "/content/":
		_, _ = w.Write([]byte(`{
			"status": 200,
			"response": {
				"id": "edanmdm-NASM_A19600093000",
				"title": "1903 Wright Flyer",
				"unitCode": "NASM",
				"content": {
					"descriptiveNonRepeating": {"data_source": "National Air and Space Museum"},
					"freetext": {
						"name": [{"label": "Maker", "content": "Wright Brothers"}],
						"date": [{"label": "Date", "content": "1903"}]
					}
				}
			}
		}`))
	case len(r.URL.Path) > 7 && r.URL.Path[:7] == "/terms/":
		_, _ = w.Write([]byte(`{"status":200,"response":{"terms":["Aeronautics","Agriculture","Art"]}}`))
	default:
		http.NotFound(w, r)
	}
}
