package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/confindent/go-confindent/format"
	"github.com/confindent/go-confindent/tree"
)

// encodeFormat writes the lossless projection of nodes: an array of
// {key, value, children} objects where the value property is present
// exactly when the node has a value.
func encodeFormat(nodes []*tree.Node, w io.Writer, es *EncState) error {
	if nodes == nil {
		nodes = []*tree.Node{}
	}
	switch es.format {
	case format.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case format.YAMLFormat:
		enc := yaml.NewEncoder(w, yaml.Indent(2))
		defer enc.Close()
		return enc.Encode(nodes)
	}
	return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
}
