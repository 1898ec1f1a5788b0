package tabconv

import "fmt"

type artifact struct {
	filename string
	mimeType string
}

var artifacts = map[Format]artifact{
	Markdown: {"table.md", "text/markdown"},
	Excel:    {"table.tsv", "text/tab-separated-values"},
	HTML:     {"table.html", "text/html"},
	CSV:      {"table.csv", "text/csv"},
	JSON:     {"table.json", "application/json"},
	YAML:     {"table.yaml", "application/yaml"},
	Pretty:   {"table.txt", "text/plain"},
}

// Download is converted content paired with the fixed filename and MIME type
// of its format.
type Download struct {
	Filename string
	MIMEType string
	Content  []byte
}

// ArtifactName returns the fixed filename and MIME type for format f.
func ArtifactName(f Format) (filename, mimeType string, err error) {
	a, ok := artifacts[f]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return a.filename, a.mimeType, nil
}

// NewDownload detects raw and converts it to format f. It returns
// [ErrNoContent] rather than an empty download.
func NewDownload(raw string, f Format) (Download, error) {
	return NewDetector(nil).NewDownload(raw, f)
}

// NewDownload is like the package-level [NewDownload] but logs through d.
func (d *Detector) NewDownload(raw string, f Format) (Download, error) {
	filename, mimeType, err := ArtifactName(f)
	if err != nil {
		return Download{}, err
	}
	content, err := Marshal(f, d.Detect(raw).Table)
	if err != nil {
		return Download{}, err
	}
	return Download{Filename: filename, MIMEType: mimeType, Content: content}, nil
}
