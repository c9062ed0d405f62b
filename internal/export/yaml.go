package export

import (
	"fmt"
	"io"

	"github.com/zarlcorp/zfake/internal/record"
	"gopkg.in/yaml.v3"
)

// writeYAML writes a sequence of mappings. Nodes are built by hand so field
// order survives and every value stays a string.
func writeYAML(w io.Writer, ds record.Dataset) error {
	root := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range ds {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range r {
			m.Content = append(m.Content, strNode(f.Name), strNode(f.Value))
		}
		root.Content = append(root.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return nil
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
