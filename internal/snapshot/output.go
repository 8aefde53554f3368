package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/page-snapshot/internal/common"
	"github.com/dtnitsch/page-snapshot/models"
)

// frontMatter is the YAML header of a markdown snapshot.
type frontMatter struct {
	Title    string   `yaml:"title,omitempty"`
	URL      string   `yaml:"url,omitempty"`
	Author   string   `yaml:"author,omitempty"`
	ReadTime int      `yaml:"read_time_minutes"`
	Tags     []string `yaml:"tags,omitempty"`
	Language string   `yaml:"language,omitempty"`
	Status   string   `yaml:"status,omitempty"`
}

// renderSnapshot encodes snap in the requested format. fields only
// applies to json and yaml.
func renderSnapshot(snap *models.Snapshot, format string, fields string) ([]byte, error) {
	switch format {
	case models.FormatMarkdown:
		return renderMarkdown(snap)
	case models.FormatJSON, models.FormatYAML:
		filtered, err := common.FilterResultFields(snap, fields)
		if err != nil {
			return nil, err
		}
		if format == models.FormatJSON {
			data, err := json.MarshalIndent(filtered, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal json: %w", err)
			}
			return append(data, '\n'), nil
		}
		data, err := yaml.Marshal(filtered)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func renderMarkdown(snap *models.Snapshot) ([]byte, error) {
	fm := frontMatter{
		Title:    snap.TitleOr(""),
		URL:      snap.URL,
		Author:   snap.AuthorOr(""),
		ReadTime: snap.ReadTimeMinutes,
		Tags:     snap.Tags,
		Language: snap.Metadata.Language,
	}
	if snap.Status != models.StatusConverted {
		fm.Status = string(snap.Status)
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")
	buf.WriteString(snap.Markdown)
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
