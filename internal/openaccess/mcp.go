package openaccess

import (
	"context"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// SearchCollectionMCP is the MCP wrapper for Search
func (c *Client) SearchCollectionMCP(ctx context.Context, args SearchCollectionArgs) (SearchCollectionResult, error) {
	if err := ValidateSearchQuery(args.Query); err != nil {
		return SearchCollectionResult{}, err
	}

	resp, err := c.Search(ctx, SearchQuery{
		Query:           args.Query,
		Rows:            args.Rows,
		Start:           args.Start,
		OnlineMediaOnly: args.OnlineMediaOnly,
	})
	if err != nil {
		return SearchCollectionResult{}, err
	}

	items := summarizeRows(resp.Rows)
	return SearchCollectionResult{
		Items:        items,
		TotalResults: resp.RowCount,
		Returned:     len(items),
	}, nil
}

// GetItemMCP is the MCP wrapper for GetItem
func (c *Client) GetItemMCP(ctx context.Context, args GetItemArgs) (GetItemResult, error) {
	row, err := c.GetItem(ctx, args.ItemID)
	if err != nil {
		return GetItemResult{}, err
	}
	return GetItemResult{Item: detailFromRow(*row)}, nil
}

// GetCategoryTermsMCP is the MCP wrapper for GetCategoryTerms
func (c *Client) GetCategoryTermsMCP(ctx context.Context, args GetCategoryTermsArgs) (GetCategoryTermsResult, error) {
	resp, err := c.GetCategoryTerms(ctx, args.Category, args.StartsWith)
	if err != nil {
		return GetCategoryTermsResult{}, err
	}

	return GetCategoryTermsResult{
		Category: resp.Category,
		Terms:    resp.Terms,
		Count:    len(resp.Terms),
	}, nil
}
