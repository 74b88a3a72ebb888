package openaccess

// SearchCollectionArgs contains parameters for collection search
type SearchCollectionArgs struct {
	Query           string `json:"query" jsonschema:"required" jsonschema_description:"Search terms, e.g. 'Wright Flyer' or 'topic:Aeronautics'"`
	Rows            int    `json:"rows,omitempty" jsonschema_description:"Number of results to return, 1-1000 (default: 10)"`
	Start           int    `json:"start,omitempty" jsonschema_description:"Zero-based offset into the result set for paging (default: 0)"`
	OnlineMediaOnly bool   `json:"online_media_only,omitempty" jsonschema_description:"Only return items with digitized images (default: false)"`
}

// SearchCollectionResult is the result of a collection search
type SearchCollectionResult struct {
	Items        []ItemSummary `json:"items"`
	TotalResults int           `json:"total_results"` // total matches upstream, not just this page
	Returned     int           `json:"returned"`
}

// GetItemArgs contains parameters for getting one item by ID
type GetItemArgs struct {
	ItemID string `json:"item_id" jsonschema:"required" jsonschema_description:"EDAN record ID from a search result, e.g. 'edanmdm-NASM_A19600093000'"`
}

// GetItemResult is the result of getting an item
type GetItemResult struct {
	Item ItemDetail `json:"item"`
}

// GetCategoryTermsArgs contains parameters for listing facet terms
type GetCategoryTermsArgs struct {
	Category   string `json:"category" jsonschema:"required" jsonschema_description:"Facet category: culture, data_source, date, object_type, online_media_type, place, topic, or unit_code"`
	StartsWith string `json:"starts_with,omitempty" jsonschema_description:"Only return terms beginning with this prefix"`
}

// GetCategoryTermsResult is the result of listing facet terms
type GetCategoryTermsResult struct {
	Category string   `json:"category"`
	Terms    []string `json:"terms"`
	Count    int      `json:"count"`
}
