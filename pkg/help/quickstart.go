package help

const QuickstartYAML = `# page-snapshot Quick Start

formats:
  markdown: "YAML front matter followed by the markdown snapshot (default)"
  json: "Full snapshot object, filter with --fields"
  yaml: "Full snapshot object, filter with --fields"

commands:
  snapshot_file: |
    page-snapshot snapshot --input page.html --location "https://example.com/post"

  snapshot_stdin: |
    curl -s https://example.com/post | page-snapshot snapshot --location "https://example.com/post"

  selected_fields: |
    page-snapshot snapshot -i page.html -f json --fields "title,url,read_time_minutes,metadata.language"

  fragment_only: |
    echo "<table><tr><th>A</th></tr></table>" | page-snapshot convert

  metadata_only: |
    page-snapshot meta -i page.html

  read_time: |
    page-snapshot readtime -i page.html

config_file: |
  # page-snapshot --config snapshot.yaml snapshot -i page.html
  preserve_nested_tables: false
  enrich: true
  tag_count: 5
  format: markdown

tables:
  markdown: "Tables with a header row become GFM tables, colspans keep their width"
  raw_html: "Tables holding lists, headings, quotes, rules or code blocks stay HTML"
  unwrapped: "Single cell tables and tables holding tables are layout, only their content is kept"

exit_codes:
  "0": "success"
  "1": "usage error (bad flag, format, location or config value)"
  "2": "I/O error (input, output or config file)"
`
