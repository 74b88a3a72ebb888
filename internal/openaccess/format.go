package openaccess

import "sort"

// ItemSummary is the compact per-row projection returned by searches.
// ID is always populated so a summary can be fed straight into an item
// lookup.
type ItemSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Unit        string `json:"unit,omitempty"`
	RecordLink  string `json:"record_link,omitempty"`
	MediaCount  int    `json:"media_count"`
	OnlineMedia bool   `json:"online_media"`
}

// ItemDetail is the full projection of one collection record.
type ItemDetail struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Unit       string          `json:"unit,omitempty"`
	DataSource string          `json:"data_source,omitempty"`
	RecordLink string          `json:"record_link,omitempty"`
	Media      []MediaItem     `json:"media,omitempty"`
	Fields     []MetadataField `json:"fields,omitempty"`
}

// MediaItem is one digitized asset attached to a record.
type MediaItem struct {
	Type      string `json:"type,omitempty"`
	URL       string `json:"url,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// MetadataField is one flattened freetext entry, e.g.
// {Category: "date", Label: "Date", Content: "1903"}.
type MetadataField struct {
	Category string `json:"category"`
	Label    string `json:"label,omitempty"`
	Content  string `json:"content"`
}

// summarizeRow projects an upstream row to the search-result shape.
func summarizeRow(row Row) ItemSummary {
	desc := row.Content.DescriptiveNonRepeating
	count := desc.OnlineMedia.Count()
	return ItemSummary{
		ID:          row.ID,
		Title:       displayTitle(row),
		Unit:        row.UnitCode,
		RecordLink:  desc.RecordLink,
		MediaCount:  count,
		OnlineMedia: count > 0,
	}
}

// summarizeRows projects a slice of rows, preserving upstream order.
func summarizeRows(rows []Row) []ItemSummary {
	items := make([]ItemSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, summarizeRow(row))
	}
	return items
}

// detailFromRow projects an upstream row to the full item shape. Freetext
// categories are emitted in sorted order so output is deterministic; the
// upstream map has no stable iteration order.
func detailFromRow(row Row) ItemDetail {
	desc := row.Content.DescriptiveNonRepeating

	detail := ItemDetail{
		ID:         row.ID,
		Title:      displayTitle(row),
		Unit:       row.UnitCode,
		DataSource: desc.DataSource,
		RecordLink: desc.RecordLink,
	}

	for _, m := range desc.OnlineMedia.Media {
		detail.Media = append(detail.Media, MediaItem{
			Type:      m.Type,
			URL:       m.Content,
			Thumbnail: m.Thumbnail,
		})
	}

	categories := make([]string, 0, len(row.Content.Freetext))
	for category := range row.Content.Freetext {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		for _, entry := range row.Content.Freetext[category] {
			if entry.Content == "" {
				continue
			}
			detail.Fields = append(detail.Fields, MetadataField{
				Category: category,
				Label:    entry.Label,
				Content:  entry.Content,
			})
		}
	}

	return detail
}

// displayTitle falls back to a placeholder for records with no title.
func displayTitle(row Row) string {
	if row.Title != "" {
		return row.Title
	}
	return "Untitled"
}
