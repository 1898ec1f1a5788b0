package tabconv

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML renders the same records as writeJSON, as a sequence of mappings.
// Every value is tagged as a string so "1" and "true" survive a round trip.
func writeYAML(w io.Writer, t Table) error {
	if len(t) < 2 {
		return ErrNoContent
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, rec := range records(t) {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range rec {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.value},
			)
		}
		seq.Content = append(seq.Content, m)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}
