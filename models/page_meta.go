package models

type PageMetadata struct {
	// Language detection (from pkg/detector)
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"` // ISO-639-1 (e.g. "en")
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`

	// Size signals
	WordCount        int     `json:"word_count" yaml:"word_count"`
	ImageCount       int     `json:"image_count" yaml:"image_count"`
	EstimatedReadMin float64 `json:"estimated_read_min" yaml:"estimated_read_min"` // before rounding

	// Readability enrichment (from go-readability)
	Byline        string `json:"byline,omitempty" yaml:"byline,omitempty"`
	Excerpt       string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"` // meta description
	SiteName      string `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	PublishedTime string `json:"published_time,omitempty" yaml:"published_time,omitempty"` // ISO-8601 date
	Favicon       string `json:"favicon,omitempty" yaml:"favicon,omitempty"`
	Image         string `json:"image,omitempty" yaml:"image,omitempty"` // main image URL

	// URL classification: gov, edu, academic, mobile, commercial
	SiteType string `json:"site_type,omitempty" yaml:"site_type,omitempty"`

	Enriched bool `json:"enriched" yaml:"enriched"`
}
