package models

// ParseMode represents how much of a page is captured.
type ParseMode int

const (
	// ParseModeFull captures metadata, read time and the markdown snapshot.
	ParseModeFull ParseMode = iota
	ParseModeMeta // metadata and read time only, no conversion
)

// ResolveParseMode determines the appropriate parse mode from a request.
func ResolveParseMode(req SnapshotRequest) ParseMode {
	if req.Mode == ParseModeMeta {
		return ParseModeMeta
	}
	return ParseModeFull
}

// ConversionStatus tells a normal conversion apart from the plain text fallback.
type ConversionStatus string

const (
	StatusConverted ConversionStatus = "converted"
	StatusDegraded  ConversionStatus = "degraded"
	StatusSkipped   ConversionStatus = "skipped" // ParseModeMeta
)

// ConversionResult is the outcome of turning a page into markdown.
type ConversionResult struct {
	Markdown string
	Status   ConversionStatus
	Reason   string // set when degraded
}

func Converted(markdown string) ConversionResult {
	return ConversionResult{Markdown: markdown, Status: StatusConverted}
}

func Degraded(plainText string, reason string) ConversionResult {
	return ConversionResult{Markdown: plainText, Status: StatusDegraded, Reason: reason}
}

func (r ConversionResult) IsDegraded() bool {
	return r.Status == StatusDegraded
}
