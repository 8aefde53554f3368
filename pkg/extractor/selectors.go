package extractor

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors are tried in order; the first match is the content node.
var contentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	".content",
	"#content",
	".post",
	".entry",
}

// SelectTitle returns the first non-empty of og:title, twitter:title,
// meta title, the <title> element and the first <h1>.
func SelectTitle(doc *goquery.Document) *string {
	if doc == nil {
		return nil
	}
	return firstNonEmpty(
		metaContent(doc, "og:title"),
		metaContent(doc, "twitter:title"),
		metaContent(doc, "title"),
		documentTitle(doc),
		doc.Find("h1").First().Text(),
	)
}

// SelectCanonicalURL returns the declared canonical url of the page,
// falling back to location and then to the document url. A relative
// canonical href is resolved against that fallback.
func SelectCanonicalURL(doc *goquery.Document, location string) string {
	if location == "" && doc != nil && doc.Url != nil {
		location = doc.Url.String()
	}
	if doc == nil {
		return location
	}

	href, _ := doc.Find(`link[rel~="canonical"]`).First().Attr("href")
	canonical := firstNonEmpty(
		metaContent(doc, "og:url"),
		metaContent(doc, "twitter:url"),
		href,
	)
	if canonical == nil {
		return location
	}
	return resolveURL(*canonical, location)
}

// SelectAuthor returns the first non-empty of meta author, og:author,
// article:author and twitter:creator.
func SelectAuthor(doc *goquery.Document) *string {
	if doc == nil {
		return nil
	}
	return firstNonEmpty(
		metaContent(doc, "author"),
		metaContent(doc, "og:author"),
		metaContent(doc, "article:author"),
		metaContent(doc, "twitter:creator"),
	)
}

// SelectContentNode returns the element most likely to hold the main
// content. It falls back to body, and to the document root when the
// document has no body.
func SelectContentNode(doc *goquery.Document) *goquery.Selection {
	if doc == nil {
		return nil
	}
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return bodyOf(doc)
}

// metaContent reads <meta> content by key, accepting both the property
// and the name attribute since pages use them interchangeably.
// documentTitle returns the text of the first HTML title element. Title
// elements of inline svg or math content are not the document title.
func documentTitle(doc *goquery.Document) string {
	return doc.Find("title").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Nodes[0].Namespace == ""
	}).First().Text()
}

func metaContent(doc *goquery.Document, key string) string {
	for _, attr := range []string{"property", "name"} {
		content, ok := doc.Find(`meta[` + attr + `="` + key + `"]`).First().Attr("content")
		if ok && strings.TrimSpace(content) != "" {
			return content
		}
	}
	return ""
}

func firstNonEmpty(values ...string) *string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return &v
		}
	}
	return nil
}

func resolveURL(ref, base string) string {
	refURL, err := url.Parse(ref)
	if err != nil || refURL.IsAbs() || base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
