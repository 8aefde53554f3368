package markdown

import (
	"strings"
	"sync"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading and paragraph",
			input: `<h1>Title</h1><p>Some <strong>bold</strong> text.</p>`,
			want:  "# Title\n\nSome **bold** text.",
		},
		{
			name:  "strikethrough",
			input: `<p><del>gone</del></p>`,
			want:  "~~gone~~",
		},
		{
			name:  "table",
			input: `<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>`,
			want:  "| A   | B   |\n| --- | --- |\n| 1   | 2   |",
		},
		{
			name:  "scripts are dropped",
			input: `<p>kept</p><script>alert(1)</script>`,
			want:  "kept",
		},
	}

	c := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.input)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreserveNestedTablesOption(t *testing.T) {
	input := `<table><tr><td>a</td><td><table><tr><td>x</td><td>y</td></tr></table></td></tr></table>`

	plain, err := New(Options{}).Convert(input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if strings.Contains(plain, "<table>") {
		t.Errorf("default options should not emit raw tables:\n%s", plain)
	}

	preserved, err := New(Options{PreserveNestedTables: true}).Convert(input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.HasPrefix(preserved, "<div><table>") {
		t.Errorf("expected raw nested tables:\n%s", preserved)
	}
}

func TestConverterIsReusableAcrossGoroutines(t *testing.T) {
	c := New(Options{})
	input := `<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>`
	want, err := c.Convert(input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Convert(input)
			if err != nil || got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent conversion = %q, want %q", got, want)
	}
}
