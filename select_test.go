package confindent

import (
	"strings"
	"testing"
)

func TestSelect(t *testing.T) {
	doc, err := ParseString(
		"Host tilde\n\tHostName tilde.town\n\tPort 22\nHost example\n\tHostName example.com\nFlag\n")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		expr  string
		paths []string
	}{
		{`key == "Host"`, []string{"Host", "Host"}},
		{`key == "HostName"`, []string{"Host/HostName", "Host/HostName"}},
		{`!hasValue`, []string{"Flag"}},
		{`depth == 1`, []string{"Host/HostName", "Host/Port", "Host/HostName"}},
		{`nchildren > 0`, []string{"Host", "Host"}},
		{`path == "Host/Port"`, []string{"Host/Port"}},
		{`value == "22"`, []string{"Host/Port"}},
		{`key startsWith "Host" && depth == 0`, []string{"Host", "Host"}},
		{`value endsWith ".town"`, []string{"Host/HostName"}},
		{`key == "nothing"`, nil},
	}
	for i, test := range tests {
		nodes, err := Select(doc, test.expr)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		var paths []string
		for _, n := range nodes {
			paths = append(paths, n.Path())
		}
		if len(paths) != len(test.paths) {
			t.Errorf("test %d %q: got %v, want %v", i, test.expr, paths, test.paths)
			continue
		}
		for j := range paths {
			if paths[j] != test.paths[j] {
				t.Errorf("test %d %q: got %v, want %v", i, test.expr, paths, test.paths)
				break
			}
		}
	}
}

func TestSelectValues(t *testing.T) {
	doc, err := ParseString("A 1\nA 2\nB 3\n")
	if err != nil {
		t.Fatal(err)
	}
	nodes, err := Select(doc, `key == "A"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 || nodes[0].ValueOr("") != "1" || nodes[1].ValueOr("") != "2" {
		t.Errorf("got %d nodes", len(nodes))
	}
}

func TestSelectErrors(t *testing.T) {
	doc, err := ParseString("A 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Select(doc, `key ==`); err == nil || !strings.Contains(err.Error(), "could not compile") {
		t.Errorf("want compile error, got %v", err)
	}
	if _, err := Select(doc, `key`); err == nil || !strings.Contains(err.Error(), "not bool") {
		t.Errorf("want type error, got %v", err)
	}
	if _, err := Select(nil, `true`); err == nil {
		t.Error("want error for nil document")
	}
}
