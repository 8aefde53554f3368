package models

type SnapshotRequest struct {
	URL  string // location of the document, used when no canonical url is present
	HTML string

	// Optional hints
	Mode ParseMode `json:"mode,omitempty"`

	// Optional enrichment
	Enrich   bool `json:"enrich,omitempty"`
	TagCount int  `json:"tag_count,omitempty"`
}
