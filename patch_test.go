package confindent

import (
	"testing"
)

type patchTest struct {
	Doc   string
	Patch string
	Res   string
	Error bool
}

func TestPatch(t *testing.T) {
	tests := []patchTest{
		{
			Doc:   "User gennyble\n\tID 256\n",
			Patch: `[{"op": "replace", "path": "/0/children/0/value", "value": "512"}]`,
			Res:   "User gennyble\n\tID 512",
		},
		{
			Doc:   "User gennyble\n",
			Patch: `[{"op": "add", "path": "/0/children", "value": [{"key": "ID", "value": "256"}]}]`,
			Res:   "User gennyble\n\tID 256",
		},
		{
			Doc:   "A 1\nB 2\n",
			Patch: `[{"op": "remove", "path": "/0"}]`,
			Res:   "B 2",
		},
		{
			Doc:   "A 1\nB 2\n",
			Patch: `[{"op": "add", "path": "/-", "value": {"key": "C"}}]`,
			Res:   "A 1\nB 2\nC",
		},
		{
			// Adding an empty value turns a bare key into "Flag ".
			Doc:   "Flag\n",
			Patch: `[{"op": "add", "path": "/0/value", "value": ""}]`,
			Res:   "Flag ",
		},
		{
			Doc:   "A 1\n",
			Patch: `[{"op": "move", "from": "/0/value", "path": "/0/children"}]`,
			Error: true,
		},
		{
			Doc:   "A 1\n",
			Patch: `[{"op": "replace", "path": "/5/value", "value": "x"}]`,
			Error: true,
		},
		{
			// The patched projection must still decode as a document.
			Doc:   "A 1\n",
			Patch: `[{"op": "replace", "path": "/0/key", "value": "has space"}]`,
			Error: true,
		},
		{
			Doc:   "A 1\n",
			Patch: `not json`,
			Error: true,
		},
	}
	for i := range tests {
		test := &tests[i]
		doc, err := ParseString(test.Doc)
		if err != nil {
			t.Errorf("error parsing doc in test %d: %v", i, err)
			continue
		}
		before := String(doc)
		res, err := Patch(doc, []byte(test.Patch))
		if err != nil {
			if !test.Error {
				t.Errorf("test %d: unexpected error %v", i, err)
			}
			continue
		}
		if test.Error {
			t.Errorf("test %d: expected error, got:\n%s", i, String(res))
			continue
		}
		if got := String(res); got != test.Res {
			t.Errorf("test %d: got %q, want %q", i, got, test.Res)
		}
		// The input document is left alone.
		if got := String(doc); got != before {
			t.Errorf("test %d: patch modified its input: %q", i, got)
		}
	}
}
