package openaccess

import (
	"strings"

	apierrors "github.com/AlexLin1234/smithsonian-mcp-server/internal/errors"
)

const (
	// MaxQueryLength is the maximum allowed search query length
	MaxQueryLength = 500

	// MaxItemIDLength bounds EDAN record identifiers. Real IDs are well
	// under this; the cap only rejects garbage input.
	MaxItemIDLength = 200

	// DefaultRows is the page size used when the caller does not ask for one
	DefaultRows = 10

	// MaxRows is the largest page size the upstream API accepts
	MaxRows = 1000
)

// Categories lists the facet categories the /terms endpoint serves.
var Categories = []string{
	"culture",
	"data_source",
	"date",
	"object_type",
	"online_media_type",
	"place",
	"topic",
	"unit_code",
}

// ValidateSearchQuery validates a search query.
func ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return apierrors.NewValidationError("query", "", "search query is required")
	}
	if len(query) > MaxQueryLength {
		return apierrors.NewValidationError("query", truncate(query, 50),
			"search query exceeds maximum length of 500 characters")
	}
	return nil
}

// ValidateItemID validates an EDAN record identifier.
func ValidateItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return apierrors.NewValidationError("item_id", "", "item ID is required")
	}
	if len(itemID) > MaxItemIDLength {
		return apierrors.NewValidationError("item_id", truncate(itemID, 50),
			"item ID exceeds maximum length of 200 characters")
	}
	return nil
}

// ValidateCategory checks the category against the facet set the upstream
// /terms endpoint serves. Matching is case-sensitive; the API is too.
func ValidateCategory(category string) error {
	if category == "" {
		return apierrors.NewValidationError("category", "", "category is required")
	}
	for _, c := range Categories {
		if category == c {
			return nil
		}
	}
	return apierrors.NewValidationError("category", category,
		"unknown category, expected one of: "+strings.Join(Categories, ", "))
}

// ClampRows folds any caller value into the range the upstream accepts.
// Zero and negatives mean "use the default" rather than an error.
func ClampRows(rows int) int {
	if rows <= 0 {
		return DefaultRows
	}
	if rows > MaxRows {
		return MaxRows
	}
	return rows
}

// ClampStart floors the paging offset at zero.
func ClampStart(start int) int {
	if start < 0 {
		return 0
	}
	return start
}
