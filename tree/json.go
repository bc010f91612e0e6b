package tree

import (
	"encoding/json"
	"fmt"
	"strings"
)

type nodeJSON struct {
	Key   string  `json:"key"`
	Value *string `json:"value,omitempty"`
	Nodes []*Node `json:"children,omitempty"`
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &nodeJSON{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	if err := checkKey(tmp.Key); err != nil {
		return err
	}
	if tmp.Value != nil && strings.ContainsAny(*tmp.Value, "\r\n") {
		return fmt.Errorf("value %q contains a line break", *tmp.Value)
	}
	n.Key = tmp.Key
	n.Value = tmp.Value
	n.Nodes = tmp.Nodes
	for _, kid := range n.Nodes {
		kid.Parent = n
	}
	return nil
}

// checkKey enforces the keys a document can round trip: non-empty,
// no space, no line break.
func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if strings.ContainsAny(key, " \r\n") {
		return fmt.Errorf("key %q contains a space or line break", key)
	}
	return nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	if len(d.Nodes) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(d.Nodes)
}

func (d *Document) UnmarshalJSON(b []byte) error {
	var nodes []*Node
	if err := json.Unmarshal(b, &nodes); err != nil {
		return err
	}
	for _, n := range nodes {
		n.Parent = nil
	}
	d.Nodes = nodes
	return nil
}
