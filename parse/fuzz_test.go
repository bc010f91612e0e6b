package parse

import (
	"bytes"
	"testing"

	"github.com/confindent/go-confindent/encode"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		"",
		"Key",
		"Key Value",
		"Key ",
		"Key two words",
		"User gennyble\n\tEmail gen@nyble.dev\n\tID 256",
		"Flag\nOther value",
		"A\n\tB\n\t\tC\n\tD\nE",
		"A\n  B\n  C",
		"R1\n  A\nR2\n\tB",
		"A\r\nB\r\n",
		"\n\n \t\n",
		"Host example.com\n    Port 22\n    User root\n",

		// Invalid shapes that must error, not panic
		"\tIndented",
		"Root\n\t Child x",
		"Root\n    A\n  B",
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		doc, err := Parse(data)
		if err != nil {
			if doc != nil {
				t.Errorf("error with partial document")
			}
			return // parse errors are expected for random input
		}

		// Secondary: if parse succeeds, encode should not panic
		var buf bytes.Buffer
		if err := encode.Encode(doc, &buf); err != nil {
			return
		}

		// Tertiary: canonical text must parse back cleanly
		if _, err := Parse(buf.Bytes()); err != nil {
			t.Errorf("round trip failed: %v\n# original\n%q\n# encoded\n%q", err, data, buf.Bytes())
		}
	})
}
