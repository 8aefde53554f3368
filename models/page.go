package models

// Snapshot is the captured state of a single web page, ready to be
// submitted to the reading list.
type Snapshot struct {
	Title           *string          `json:"title" yaml:"title"`
	URL             string           `json:"url" yaml:"url"`
	Author          *string          `json:"author" yaml:"author"`
	ReadTimeMinutes int              `json:"read_time_minutes" yaml:"read_time_minutes"`
	Markdown        string           `json:"snapshot" yaml:"snapshot"`
	Status          ConversionStatus `json:"status" yaml:"status"`
	Reason          string           `json:"reason,omitempty" yaml:"reason,omitempty"`
	Tags            []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Hash            string           `json:"hash,omitempty" yaml:"hash,omitempty"` // sha256 of Markdown
	Metadata        PageMetadata     `json:"metadata" yaml:"metadata"`
}

// TitleOr returns the snapshot title or fallback when no title was found.
func (s *Snapshot) TitleOr(fallback string) string {
	if s.Title == nil {
		return fallback
	}
	return *s.Title
}

// AuthorOr returns the snapshot author or fallback when no author was found.
func (s *Snapshot) AuthorOr(fallback string) string {
	if s.Author == nil {
		return fallback
	}
	return *s.Author
}

// ReadTimeEstimate is derived from the visible body text and image count.
// It is computed on every call and never cached.
type ReadTimeEstimate struct {
	WordCount    int     `json:"word_count" yaml:"word_count"`
	ImageCount   int     `json:"image_count" yaml:"image_count"`
	ImageSeconds int     `json:"image_seconds" yaml:"image_seconds"`
	RawMinutes   float64 `json:"raw_minutes" yaml:"raw_minutes"`
	Minutes      int     `json:"minutes" yaml:"minutes"`
}
