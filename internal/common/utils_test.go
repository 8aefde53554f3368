package common

import (
	"reflect"
	"testing"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  https://example.com/a  ", "https://example.com/a"},
		{"https://example.com/a,", "https://example.com/a"},
		{"(https://example.com/a).", "https://example.com/a"},
		{"<https://example.com/a>", "https://example.com/a"},
		{"[docs](https://example.com/docs)", "https://example.com/docs"},
		{"https://en.wikipedia.org/wiki/Go_(language)", "https://en.wikipedia.org/wiki/Go_(language)"},
		{"(https://en.wikipedia.org/wiki/Go_(language))", "https://en.wikipedia.org/wiki/Go_(language)"},
	}

	for _, tt := range tests {
		if got := SanitizeURL(tt.in); got != tt.want {
			t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""},
		{in: " https://example.com/post, ", want: "https://example.com/post"},
		{in: "ftp://example.com/file", wantErr: true},
		{in: "example.com/post", wantErr: true},
		{in: "https://exa mple.com", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizeLocation(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeLocation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeLocation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterResultFields(t *testing.T) {
	type meta struct {
		Language string `json:"language"`
		Words    int    `json:"word_count"`
	}
	type result struct {
		Title    string `json:"title"`
		URL      string `json:"url"`
		Metadata meta   `json:"metadata"`
	}
	r := result{Title: "T", URL: "https://example.com", Metadata: meta{Language: "en", Words: 12}}

	tests := []struct {
		name   string
		fields string
		want   map[string]any
	}{
		{
			name:   "top level fields",
			fields: "title, url",
			want:   map[string]any{"title": "T", "url": "https://example.com"},
		},
		{
			name:   "nested field",
			fields: "metadata.language",
			want:   map[string]any{"metadata": map[string]any{"language": "en"}},
		},
		{
			name:   "unknown fields are ignored",
			fields: "title,missing,metadata.missing",
			want:   map[string]any{"title": "T"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterResultFields(r, tt.fields)
			if err != nil {
				t.Fatalf("FilterResultFields() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterResultFields() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterResultFieldsEmptyKeepsAll(t *testing.T) {
	got, err := FilterResultFields(struct {
		A int `json:"a"`
		B int `json:"b"`
	}{1, 2}, "")
	if err != nil {
		t.Fatalf("FilterResultFields() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected all fields, got %v", got)
	}
}

func TestContentHash(t *testing.T) {
	// sha256 of the empty string
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := ContentHash(nil); got != want {
		t.Errorf("ContentHash(nil) = %s, want %s", got, want)
	}
}
