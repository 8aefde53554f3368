package snapshot

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/page-snapshot/models"
	"github.com/dtnitsch/page-snapshot/pkg/help"
)

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "HTML file to read, - or empty for stdin",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file to write, - or empty for stdout",
	}
}

func locationFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "location",
		Aliases: []string{"u"},
		Usage:   "url the document was loaded from, used when the page has no canonical url",
	}
}

// NewApp builds the page-snapshot command line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "page-snapshot",
		Usage: "turn saved web pages into markdown snapshots for a reading list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "snapshot",
				Usage:  "extract title, url, author, read time and markdown from a page",
				Action: SnapshotAction,
				Flags: []cli.Flag{
					inputFlag(),
					outputFlag(),
					locationFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "output format: markdown, json or yaml",
					},
					&cli.BoolFlag{
						Name:  "preserve-nested-tables",
						Usage: "keep tables that contain tables as raw HTML",
					},
					&cli.BoolFlag{
						Name:  "no-enrich",
						Usage: "skip readability and language detection",
					},
					&cli.IntFlag{
						Name:  "tags",
						Usage: "number of suggested tags, 0 disables them",
					},
					&cli.StringFlag{
						Name:  "fields",
						Usage: "comma separated fields to keep in json/yaml output, e.g. title,url,metadata.language",
					},
				},
			},
			{
				Name:   "convert",
				Usage:  "convert an HTML fragment to markdown",
				Action: ConvertAction,
				Flags: []cli.Flag{
					inputFlag(),
					outputFlag(),
					&cli.BoolFlag{
						Name:  "preserve-nested-tables",
						Usage: "keep tables that contain tables as raw HTML",
					},
				},
			},
			{
				Name:   "meta",
				Usage:  "print title, url, author and read time without converting",
				Action: MetaAction,
				Flags: []cli.Flag{
					inputFlag(),
					outputFlag(),
					locationFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   models.FormatYAML,
						Usage:   "output format: json or yaml",
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "print usage examples as YAML",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.QuickstartYAML)
					return err
				},
			},
			{
				Name:   "readtime",
				Usage:  "print the estimated read time in minutes",
				Action: ReadTimeAction,
				Flags: []cli.Flag{
					inputFlag(),
				},
			},
		},
	}
}
