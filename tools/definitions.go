package tools

// AllTools contains all tool specifications for the Smithsonian MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	{
		Name:     "search_collection",
		Method:   "SearchCollection",
		Title:    "Search Collection",
		Category: "search",
		Description: `Search the Smithsonian Open Access collection of museum objects, artworks, and specimens.

USE WHEN: User asks "find objects about X", "search the Smithsonian for X", "what artifacts relate to X", or wants to browse collection items by keyword.

NOT FOR: Retrieving a specific item you already have an ID for (use get_item). Not for listing valid facet values (use get_category_terms).

PARAMETERS:
- query: Search terms (required). Supports fielded syntax like "topic:Aeronautics" or "unit_code:NASM".
- rows: Results per page, 1-1000 (default 10)
- start: Zero-based paging offset (default 0)
- online_media_only: Only items with digitized images (default false)

RETURNS: Item summaries with IDs, titles, owning units, and media counts, plus the total match count for paging.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_item",
		Method:   "GetItem",
		Title:    "Get Item",
		Category: "read",
		Description: `Retrieve full metadata for one collection item by its EDAN record ID.

USE WHEN: User picked an item from search results, or supplies an ID like "edanmdm-NASM_A19600093000" and wants dates, makers, descriptions, or media URLs.

NOT FOR: Finding items by keyword (use search_collection first to obtain an ID).

PARAMETERS:
- item_id: EDAN record ID from a search result (required)

RETURNS: Full item detail including data source, record link, media assets, and all descriptive metadata fields.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_category_terms",
		Method:   "GetCategoryTerms",
		Title:    "Get Category Terms",
		Category: "terms",
		Description: `List the controlled-vocabulary terms of one facet category, for building precise fielded searches.

USE WHEN: User asks "what topics exist", "which museums contribute", "list valid cultures", or a fielded search returned nothing and you need the exact term spelling.

NOT FOR: Searching collection items (use search_collection).

PARAMETERS:
- category: One of culture, data_source, date, object_type, online_media_type, place, topic, unit_code (required)
- starts_with: Only terms beginning with this prefix (optional)

RETURNS: The matching terms in upstream order with a count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
