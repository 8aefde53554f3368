package common

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// markdownLink matches a url pasted as a markdown link: [text](url).
var markdownLink = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// FilterResultFields converts result to a map keyed by its json names and
// keeps only the comma separated fields. A dotted field such as
// "metadata.language" selects a single key of a nested object. An empty
// fields string keeps everything.
func FilterResultFields(result any, fields string) (map[string]any, error) {
	full, err := structToMap(result)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(fields) == "" {
		return full, nil
	}

	filtered := make(map[string]any)
	for _, field := range strings.Split(fields, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		parent, child, nested := strings.Cut(field, ".")
		if !nested {
			if value, ok := full[field]; ok {
				filtered[field] = value
			}
			continue
		}

		obj, ok := full[parent].(map[string]any)
		if !ok {
			continue
		}
		value, ok := obj[child]
		if !ok {
			continue
		}
		dst, ok := filtered[parent].(map[string]any)
		if !ok {
			dst = make(map[string]any)
			filtered[parent] = dst
		}
		dst[child] = value
	}

	return filtered, nil
}

// structToMap converts a struct to map[string]any using JSON marshaling.
func structToMap(obj any) (map[string]any, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return result, nil
}

// ContentHash computes the SHA256 hash of content as a hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// SanitizeURL cleans up common copy-paste damage: surrounding
// whitespace, markdown link syntax and stray punctuation at either end.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	if matches := markdownLink.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	cleaned = strings.TrimLeft(cleaned, `([<"'`)
	for {
		trimmed := strings.TrimRight(cleaned, `,.}]"'>;`)
		// keep balanced parens, e.g. /wiki/Go_(language)
		if strings.HasSuffix(trimmed, ")") && strings.Count(trimmed, "(") < strings.Count(trimmed, ")") {
			trimmed = strings.TrimSuffix(trimmed, ")")
		}
		if trimmed == cleaned {
			break
		}
		cleaned = trimmed
	}

	return strings.TrimSpace(cleaned)
}

// NormalizeLocation sanitizes a document location and checks that it is
// an absolute http(s) url. An empty location is allowed.
func NormalizeLocation(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return "", nil
	}
	if strings.Contains(cleaned, " ") {
		return "", fmt.Errorf("invalid location %q: contains spaces", rawURL)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid location %q: %w", rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid location %q: scheme must be http or https", rawURL)
	}
	if parsed.Host == "" || strings.ContainsAny(parsed.Host, `{}[]<>"'`) {
		return "", fmt.Errorf("invalid location %q: bad host", rawURL)
	}

	return cleaned, nil
}
