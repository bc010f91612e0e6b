package parse

import (
	"errors"
	"testing"

	"github.com/confindent/go-confindent/token"
	"github.com/confindent/go-confindent/tree"
)

func TestParseOK(t *testing.T) {
	pts := []string{
		"",
		"\n",
		"\n \t\n\n",
		"Key",
		"Key Value",
		"Key Value\n",
		"Key1 Value1\nKey2 Value2",
		"Key1 Value1\n\tKey2 Value2",
		"Key1 Value1\n\tKey2 Value2\nKey3 Value3",
		"Key1 Value1\n\tKey2 Value2\n\t\tKey3 Value3",
		"Key1 Value1\n  Key2 Value2\n  Key3 Value3",
		"A\n\tB\n\t\tC\n\tD\nE",
		"A\n\tB\n\nC\n\tD",
		"A\r\nB value\r\n\tC\r\n",
		"Host example.com\n    Port 22\n    User root\n",
		// Blocks may pick different indent characters.
		"R1\n  A\nR2\n\tB",
		// Deeper steps need not be one unit wide.
		"A\n\tB\n\t\t\t\tC\n\tD",
		"Key value with many words  and  spacing",
		"Key ",
		"X\n\tY \n",
	}
	for _, in := range pts {
		if _, err := Parse([]byte(in)); err != nil {
			t.Errorf("# doc\n%s\n# error %v", in, err)
		}
	}
}

type parseTest struct {
	in string
	e  error
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: "Root\n\t Child x", e: ErrMixedIndentation},
		{in: "Root\n \tChild x", e: ErrMixedIndentation},
		{in: "Root\n  A\n\tB", e: ErrMixedIndentation},
		{in: "Root\n\tA\n  B", e: ErrMixedIndentation},
		{in: "\tIndented", e: ErrInvalidIndentation},
		{in: "  Indented", e: ErrInvalidIndentation},
		{in: "Root\n    A\n  B", e: ErrInvalidIndentation},
		{in: "A\n\t\tB\n\tC", e: ErrInvalidIndentation},
		{in: "R1\n  A\nR2\n    B\n  C", e: ErrInvalidIndentation},
	}
	for i := range pts {
		pt := &pts[i]
		doc, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("# doc\n%s\n# expected %v, got nil", pt.in, pt.e)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("# doc\n%s\n# error %v, want %v", pt.in, err, pt.e)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("# doc\n%s\n# error does not wrap ErrParse", pt.in)
		}
		if doc != nil {
			t.Errorf("# doc\n%s\n# partial document returned", pt.in)
		}
	}
}

func TestParseUserRecord(t *testing.T) {
	doc, err := ParseString("User gennyble\n\tEmail gen@nyble.dev\n\tID 256")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(doc.Nodes) != 1 {
		t.Fatalf("got %d roots, want 1", len(doc.Nodes))
	}
	user := doc.Child("User")
	if user.ValueOr("") != "gennyble" {
		t.Errorf("User value = %q", user.ValueOr(""))
	}
	if len(user.Nodes) != 2 {
		t.Fatalf("got %d children, want 2", len(user.Nodes))
	}
	if v := user.ChildValue("Email"); v == nil || *v != "gen@nyble.dev" {
		t.Errorf("Email = %v", v)
	}
	if v := user.ChildValue("ID"); v == nil || *v != "256" {
		t.Errorf("ID = %v", v)
	}
}

func TestParseValuelessRoot(t *testing.T) {
	doc, err := ParseString("Flag\nOther value")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(doc.Nodes) != 2 {
		t.Fatalf("got %d roots, want 2", len(doc.Nodes))
	}
	if doc.Nodes[0].HasValue() {
		t.Errorf("Flag has value %q", doc.Nodes[0].ValueOr(""))
	}
	if doc.Nodes[1].ValueOr("") != "value" {
		t.Errorf("Other value = %q", doc.Nodes[1].ValueOr(""))
	}
}

// "Key" carries no value while "Key " carries the empty one.
func TestParseAbsentVersusEmpty(t *testing.T) {
	doc, err := ParseString("NoVal\nEmpty \n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Nodes[0].Value != nil {
		t.Errorf("NoVal parsed with a value")
	}
	if v := doc.Nodes[1].Value; v == nil || *v != "" {
		t.Errorf("Empty parsed as %v, want the empty value", v)
	}
}

func TestParseDuplicateOrder(t *testing.T) {
	doc, err := ParseString("Host a\n\tOpt 1\n\tOpt 2\n\tOpt 3\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	opts := doc.Child("Host").Children("Opt")
	if len(opts) != 3 {
		t.Fatalf("got %d Opt children, want 3", len(opts))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got := opts[i].ValueOr(""); got != want {
			t.Errorf("Opt[%d] = %q, want %q", i, got, want)
		}
	}
}

// Root count always equals the count of zero-indentation lines.
func TestParseRootCount(t *testing.T) {
	ins := []struct {
		in    string
		roots int
	}{
		{"", 0},
		{"A", 1},
		{"A\nB\nC", 3},
		{"A\n\tB\nC\n\tD\n\t\tE", 2},
		{"A\n\n\nB", 2},
	}
	for _, tt := range ins {
		doc, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", tt.in, err)
			continue
		}
		if len(doc.Nodes) != tt.roots {
			t.Errorf("# doc\n%s\n# got %d roots, want %d", tt.in, len(doc.Nodes), tt.roots)
		}
	}
}

// Dedent resolves to the open level with the same count, wherever
// counts are uneven.
func TestParseDepthByFirstSeenCount(t *testing.T) {
	doc, err := ParseString("A\n   B\n      C\n   D\nE\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	a := doc.Child("A")
	if got := len(a.Nodes); got != 2 {
		t.Fatalf("A has %d children, want 2", got)
	}
	if a.Nodes[0].Key != "B" || a.Nodes[1].Key != "D" {
		t.Errorf("A children = %s, %s", a.Nodes[0].Key, a.Nodes[1].Key)
	}
	if c := doc.Find("A/B/C"); c == nil {
		t.Errorf("C not below B")
	}
	if doc.Nodes[1].Key != "E" {
		t.Errorf("second root = %s, want E", doc.Nodes[1].Key)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*tree.Node]*token.Pos{}
	doc, err := Parse([]byte("User gennyble\n\tID 256\n"), ParsePositions(positions))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	id := doc.Find("User/ID")
	pos := positions[id]
	if pos == nil {
		t.Fatalf("no position recorded for ID")
	}
	line, col := pos.LineCol()
	if line != 1 || col != 1 {
		t.Errorf("ID at line=%d col=%d, want line=1 col=1", line, col)
	}
	if got := len(positions); got != 2 {
		t.Errorf("recorded %d positions, want 2", got)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("Root\n\t Child x")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %v carries no position", err)
	}
	line, col := perr.Pos.LineCol()
	if line != 1 || col != 0 {
		t.Errorf("error at line=%d col=%d, want line=1 col=0", line, col)
	}
}
