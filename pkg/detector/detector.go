package detector

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/dtnitsch/page-snapshot/models"
)

// Detector enriches a snapshot with metadata that the page itself does
// not declare in a single place: readability fields, language and a
// rough classification of the site.
type Detector struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{logger: logger}
}

// Enrich runs readability over html. Failures are logged and produce
// metadata with Enriched set to false; they never stop a snapshot.
func (d *Detector) Enrich(rawURL, html string) models.PageMetadata {
	var meta models.PageMetadata

	var pageURL *url.URL
	if rawURL != "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			d.logger.Warn("ignoring unparsable url", "url", rawURL, "error", err)
		} else {
			pageURL = u
			meta.SiteType = detectSiteType(u)
		}
	}

	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil {
		d.logger.Warn("readability failed", "url", rawURL, "error", err)
		return meta
	}

	meta.Byline = strings.TrimSpace(article.Byline)
	meta.Excerpt = strings.TrimSpace(article.Excerpt)
	meta.SiteName = strings.TrimSpace(article.SiteName)
	if article.PublishedTime != nil {
		meta.PublishedTime = article.PublishedTime.Format("2006-01-02")
	}
	meta.Favicon = article.Favicon
	meta.Image = article.Image

	meta.Language, meta.LanguageConfidence = DetectLanguage(article.TextContent)
	meta.Enriched = true
	return meta
}

var academicHosts = []string{
	"arxiv.org", "doi.org", "pubmed.ncbi.nlm.nih.gov",
	"scholar.google.com", "researchgate.net", "academia.edu",
	"biorxiv.org", "medrxiv.org", "ssrn.com",
}

// detectSiteType classifies the host: gov, edu, academic, mobile or
// commercial.
func detectSiteType(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}

	switch {
	case strings.HasSuffix(host, ".gov"), strings.HasSuffix(host, ".mil"):
		return "gov"
	case strings.HasSuffix(host, ".edu"):
		return "edu"
	}
	for _, domain := range academicHosts {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return "academic"
		}
	}
	if strings.HasPrefix(host, "m.") || strings.HasPrefix(host, "mobile.") {
		return "mobile"
	}
	return "commercial"
}
