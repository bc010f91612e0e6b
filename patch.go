package confindent

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/confindent/go-confindent/debug"
	"github.com/confindent/go-confindent/tree"
)

// Patch applies an RFC 6902 patch to the JSON projection of doc and
// returns the patched document. doc itself is not modified, and an
// error leaves no partial result.
//
// Pointer paths address the projection: /0/value is the value of the
// first root, /0/children/1 the second child of the first root. A
// patch whose result is not a valid document, a key with a space in
// it for example, is rejected.
func Patch(doc *tree.Document, patch []byte) (*tree.Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	before, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applying %d ops to %s\n", len(p), doc)
	}
	after, err := p.Apply(before)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	res := &tree.Document{}
	if err := json.Unmarshal(after, res); err != nil {
		return nil, fmt.Errorf("patch result is not a valid document: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patched to %s\n", res)
	}
	return res, nil
}
