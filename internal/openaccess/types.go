// Package openaccess provides a client for the Smithsonian Institution
// Open Access API. It exposes collection search, item metadata retrieval,
// and facet term enumeration over api.si.edu.
package openaccess

import (
	"bytes"
	"strconv"
)

// searchEnvelope is the wire shape of /search responses. Unknown fields
// are ignored; the upstream schema is an external contract that may grow.
type searchEnvelope struct {
	Status   int         `json:"status"`
	Response *searchBody `json:"response"`
}

type searchBody struct {
	Rows     []Row  `json:"rows"`
	RowCount int    `json:"rowCount"`
	Message  string `json:"message"`
}

// contentEnvelope is the wire shape of /content/{id} responses.
type contentEnvelope struct {
	Status   int  `json:"status"`
	Response *Row `json:"response"`
}

// termsEnvelope is the wire shape of /terms/{category} responses.
type termsEnvelope struct {
	Status   int        `json:"status"`
	Response *termsBody `json:"response"`
}

type termsBody struct {
	Terms []string `json:"terms"`
}

// Row is one collection record as returned by the upstream API. The same
// shape appears in search results and as the /content/{id} response body.
type Row struct {
	ID       string     `json:"id"`       // EDAN record ID, e.g. "edanmdm-NASM_A19600093000"
	Title    string     `json:"title"`    // Display title
	UnitCode string     `json:"unitCode"` // Owning museum/unit, e.g. "NASM"
	Content  RowContent `json:"content"`
}

// RowContent carries the descriptive metadata block of a record.
type RowContent struct {
	DescriptiveNonRepeating Descriptive                `json:"descriptiveNonRepeating"`
	Freetext                map[string][]FreetextEntry `json:"freetext"`
}

// Descriptive holds the non-repeating descriptive fields of a record.
type Descriptive struct {
	RecordLink  string      `json:"record_link"` // Public collection page URL
	DataSource  string      `json:"data_source"` // Contributing unit name
	GUID        string      `json:"guid"`
	OnlineMedia OnlineMedia `json:"online_media"`
}

// OnlineMedia describes digitized assets attached to a record.
type OnlineMedia struct {
	// MediaCount is an int in most responses but a quoted string in some
	// (upstream inconsistency), so it is decoded leniently.
	MediaCount FlexInt `json:"mediaCount"`
	Media      []Media `json:"media"`
}

// Count returns the media count, falling back to the media list length
// when the count field is absent or malformed.
func (om OnlineMedia) Count() int {
	if om.MediaCount > 0 {
		return int(om.MediaCount)
	}
	return len(om.Media)
}

// FlexInt decodes a JSON value that may be a number, a quoted number, or
// null. Malformed values decode to zero rather than failing the record.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// Media is a single digitized asset (image, audio, etc.).
type Media struct {
	Type      string `json:"type"`    // "Images", "Sounds", ...
	Content   string `json:"content"` // Asset URL
	Thumbnail string `json:"thumbnail"`
	IDSID     string `json:"idsId"`
}

// FreetextEntry is one label/content pair from the freetext metadata map.
type FreetextEntry struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// SearchQuery is the ephemeral request value for one search call.
type SearchQuery struct {
	Query           string // required, non-empty
	Rows            int    // clamped to [1,1000]; 0 means the default of 10
	Start           int    // clamped to >= 0
	OnlineMediaOnly bool   // restrict to records with online images
}

// SearchResponse is the parsed result of one search call.
type SearchResponse struct {
	Rows     []Row
	RowCount int // total matches upstream, not just this page
}

// TermsResponse is the parsed result of one terms call.
type TermsResponse struct {
	Category string
	Terms    []string // order as returned upstream, not guaranteed sorted
}
