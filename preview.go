package tabconv

// Preview is the HTML rendering of a detected table along with what was
// detected.
type Preview struct {
	Detection
	HTML string
}

// Render detects raw and renders it as an HTML table. It returns
// [ErrUndetected] when no format matched.
func Render(raw string) (Preview, error) {
	return NewDetector(nil).Render(raw)
}

// Render is like the package-level [Render] but logs through d.
func (d *Detector) Render(raw string) (Preview, error) {
	det := d.Detect(raw)
	if det.Table.Empty() {
		return Preview{Detection: det}, ErrUndetected
	}
	out, err := Generate(HTML, det.Table)
	if err != nil {
		return Preview{Detection: det}, err
	}
	return Preview{Detection: det, HTML: out}, nil
}
