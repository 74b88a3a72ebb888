package openaccess

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apierrors "github.com/AlexLin1234/smithsonian-mcp-server/internal/errors"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&Config{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		Timeout:   5 * time.Second,
		UserAgent: DefaultUserAgent,
	})
}

const searchResponseJSON = `{
	"status": 200,
	"response": {
		"rowCount": 2,
		"rows": [
			{
				"id": "edanmdm-NASM_A19600093000",
				"title": "1903 Wright Flyer",
				"unitCode": "NASM",
				"content": {
					"descriptiveNonRepeating": {
						"record_link": "https://airandspace.si.edu/collection-objects/flyer",
						"data_source": "National Air and Space Museum",
						"online_media": {
							"mediaCount": 2,
							"media": [
								{"type": "Images", "content": "https://ids.si.edu/1", "thumbnail": "https://ids.si.edu/1t"},
								{"type": "Images", "content": "https://ids.si.edu/2", "thumbnail": "https://ids.si.edu/2t"}
							]
						}
					}
				}
			},
			{
				"id": "edanmdm-NASM_A19610048000",
				"title": "",
				"unitCode": "NASM",
				"content": {
					"descriptiveNonRepeating": {
						"online_media": {"mediaCount": "0"}
					}
				}
			}
		]
	}
}`

func TestSearch(t *testing.T) {
	var gotQuery map[string]string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"api_key":           q.Get("api_key"),
			"q":                 q.Get("q"),
			"rows":              q.Get("rows"),
			"start":             q.Get("start"),
			"online_media_type": q.Get("online_media_type"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponseJSON))
	}))

	resp, err := client.Search(context.Background(), SearchQuery{Query: "wright flyer", Rows: 20, Start: 40})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotQuery["api_key"] != "test-key" {
		t.Errorf("api_key = %q, want test-key", gotQuery["api_key"])
	}
	if gotQuery["q"] != "wright flyer" {
		t.Errorf("q = %q, want wright flyer", gotQuery["q"])
	}
	if gotQuery["rows"] != "20" || gotQuery["start"] != "40" {
		t.Errorf("rows/start = %q/%q, want 20/40", gotQuery["rows"], gotQuery["start"])
	}
	if gotQuery["online_media_type"] != "" {
		t.Errorf("online_media_type should be absent, got %q", gotQuery["online_media_type"])
	}

	if resp.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", resp.RowCount)
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(resp.Rows))
	}
	if resp.Rows[0].ID != "edanmdm-NASM_A19600093000" {
		t.Errorf("unexpected first row ID: %s", resp.Rows[0].ID)
	}
	if got := resp.Rows[0].Content.DescriptiveNonRepeating.OnlineMedia.Count(); got != 2 {
		t.Errorf("media count = %d, want 2", got)
	}
}

func TestSearchClampsParams(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		start     int
		wantRows  string
		wantStart string
	}{
		{"defaults applied", 0, 0, "10", "0"},
		{"negative rows", -5, 0, "10", "0"},
		{"rows above max", 5000, 0, "1000", "0"},
		{"negative start", 10, -20, "10", "0"},
		{"in range untouched", 50, 100, "50", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRows, gotStart string
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotRows = r.URL.Query().Get("rows")
				gotStart = r.URL.Query().Get("start")
				_, _ = w.Write([]byte(`{"status":200,"response":{"rowCount":0,"rows":[]}}`))
			}))

			_, err := client.Search(context.Background(), SearchQuery{Query: "x", Rows: tt.rows, Start: tt.start})
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if gotRows != tt.wantRows {
				t.Errorf("rows on wire = %q, want %q", gotRows, tt.wantRows)
			}
			if gotStart != tt.wantStart {
				t.Errorf("start on wire = %q, want %q", gotStart, tt.wantStart)
			}
		})
	}
}

func TestSearchOnlineMediaOnly(t *testing.T) {
	var gotMediaType string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMediaType = r.URL.Query().Get("online_media_type")
		_, _ = w.Write([]byte(`{"status":200,"response":{"rowCount":0,"rows":[]}}`))
	}))

	_, err := client.Search(context.Background(), SearchQuery{Query: "x", OnlineMediaOnly: true})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if gotMediaType != "Images" {
		t.Errorf("online_media_type = %q, want Images", gotMediaType)
	}
}

func TestSearchUpstreamError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))

	_, err := client.Search(context.Background(), SearchQuery{Query: "x"})
	if !apierrors.IsUpstream(err) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	ue := err.(*apierrors.UpstreamError)
	if ue.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", ue.StatusCode)
	}
}

func TestSearchParseError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))

	_, err := client.Search(context.Background(), SearchQuery{Query: "x"})
	if !apierrors.IsParse(err) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
}

func TestSearchMissingResponseObject(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":200}`))
	}))

	_, err := client.Search(context.Background(), SearchQuery{Query: "x"})
	if !apierrors.IsParse(err) {
		t.Fatalf("expected ParseError for missing response object, got %T: %v", err, err)
	}
}

func TestSearchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	t.Cleanup(server.Close)

	client := NewClient(&Config{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		Timeout:   50 * time.Millisecond,
		UserAgent: DefaultUserAgent,
	})

	_, err := client.Search(context.Background(), SearchQuery{Query: "x"})
	if !apierrors.IsTimeout(err) {
		t.Fatalf("expected TimeoutError, got %T: %v", err, err)
	}
}

func TestSearchCancelled(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.Search(ctx, SearchQuery{Query: "x"})
	if !apierrors.IsCancelled(err) {
		t.Fatalf("expected CancelledError, got %T: %v", err, err)
	}
}

func TestGetItem(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content/edanmdm-NASM_A19600093000" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("missing api_key")
		}
		_, _ = w.Write([]byte(`{
			"status": 200,
			"response": {
				"id": "edanmdm-NASM_A19600093000",
				"title": "1903 Wright Flyer",
				"unitCode": "NASM",
				"content": {
					"descriptiveNonRepeating": {
						"record_link": "https://airandspace.si.edu/collection-objects/flyer"
					},
					"freetext": {
						"date": [{"label": "Date", "content": "1903"}]
					}
				}
			}
		}`))
	}))

	row, err := client.GetItem(context.Background(), "edanmdm-NASM_A19600093000")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if row.ID != "edanmdm-NASM_A19600093000" {
		t.Errorf("ID = %q", row.ID)
	}
	if row.Title != "1903 Wright Flyer" {
		t.Errorf("Title = %q", row.Title)
	}
	if len(row.Content.Freetext["date"]) != 1 {
		t.Errorf("expected one date freetext entry")
	}
}

func TestGetItemNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"upstream 404",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "not found", http.StatusNotFound)
			},
		},
		{
			"empty content object",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status":200,"response":{}}`))
			},
		},
		{
			"absent response object",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status":200}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, tt.handler)
			_, err := client.GetItem(context.Background(), "edanmdm-missing")
			if !apierrors.IsNotFound(err) {
				t.Fatalf("expected NotFoundError, got %T: %v", err, err)
			}
		})
	}
}

func TestGetItemEmptyID(t *testing.T) {
	called := false
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := client.GetItem(context.Background(), "")
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if called {
		t.Error("no HTTP request should be made for an empty ID")
	}
}

func TestGetItemEscapesID(t *testing.T) {
	var gotPath string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"status":200,"response":{"id":"odd/id"}}`))
	}))

	_, err := client.GetItem(context.Background(), "odd/id")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if gotPath != "/content/odd%2Fid" {
		t.Errorf("path = %q, want /content/odd%%2Fid", gotPath)
	}
}

func TestGetCategoryTerms(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/terms/topic" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("starts_with"); got != "Art" {
			t.Errorf("starts_with = %q, want Art", got)
		}
		_, _ = w.Write([]byte(`{"status":200,"response":{"terms":["Art","Art Deco","Artifacts"]}}`))
	}))

	resp, err := client.GetCategoryTerms(context.Background(), "topic", "Art")
	if err != nil {
		t.Fatalf("GetCategoryTerms failed: %v", err)
	}
	if resp.Category != "topic" {
		t.Errorf("Category = %q, want topic", resp.Category)
	}
	if len(resp.Terms) != 3 || resp.Terms[1] != "Art Deco" {
		t.Errorf("unexpected terms: %v", resp.Terms)
	}
}

func TestGetCategoryTermsNoPrefix(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("starts_with") {
			t.Error("starts_with should be absent when no prefix given")
		}
		_, _ = w.Write([]byte(`{"status":200,"response":{"terms":["NASM","NMNH"]}}`))
	}))

	resp, err := client.GetCategoryTerms(context.Background(), "unit_code", "")
	if err != nil {
		t.Fatalf("GetCategoryTerms failed: %v", err)
	}
	if len(resp.Terms) != 2 {
		t.Errorf("got %d terms, want 2", len(resp.Terms))
	}
}

func TestGetCategoryTermsUnknownCategory(t *testing.T) {
	called := false
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := client.GetCategoryTerms(context.Background(), "flavor", "")
	if !apierrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if called {
		t.Error("no HTTP request should be made for an unknown category")
	}
}

func TestRequestHeaders(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q", got)
		}
		_, _ = w.Write([]byte(`{"status":200,"response":{"rowCount":0,"rows":[]}}`))
	}))

	if _, err := client.Search(context.Background(), SearchQuery{Query: "x"}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
}
