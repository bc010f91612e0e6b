package gomap

import (
	"net"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/confindent/go-confindent/encode"
)

func sp(s string) *string { return &s }

func TestToDocumentRoundTrip(t *testing.T) {
	cfg := sshConfig{Hosts: []sshHost{
		{
			Name:     "tilde",
			HostName: "tilde.town",
			User:     "gennyble",
			Port:     22,
			Forward:  []string{"8080:localhost:80"},
			Compress: true,
		},
		{Name: "example", HostName: "example.com"},
	}}
	doc, err := ToDocument(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(doc)
	want := strings.TrimSuffix(sshText, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	var back sshConfig
	if err := FromDocument(doc, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("round trip diverged:\n%+v\n%+v", back, cfg)
	}
}

func TestToValueForms(t *testing.T) {
	var v struct {
		Flag  bool
		Off   bool
		Note  *string
		None  *string
		Blank string
		Skip  string `conf:",omitempty"`
		Count int
	}
	v.Flag = true
	v.Note = sp("")
	doc, err := ToDocument(v)
	if err != nil {
		t.Fatal(err)
	}
	// A present-but-empty value keeps its trailing space; false bools,
	// nil pointers and omitempty zeros disappear.
	want := "Flag\nNote \nBlank \nCount 0"
	if got := encode.MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToSliceElements(t *testing.T) {
	type elems struct {
		B []bool
		S []*string
	}
	v := elems{
		B: []bool{true, false},
		S: []*string{sp("x"), nil, sp("")},
	}
	doc, err := ToDocument(v)
	if err != nil {
		t.Fatal(err)
	}
	want := "B true\nB false\nS x\nS\nS "
	if got := encode.MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var back elems
	if err := FromDocument(doc, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, v) {
		t.Errorf("round trip diverged:\n%+v\n%+v", back, v)
	}
}

func TestToMapSorted(t *testing.T) {
	doc, err := ToDocument(map[string]int{"zebra": 1, "alpha": 2})
	if err != nil {
		t.Fatal(err)
	}
	want := "alpha 2\nzebra 1"
	if got := encode.MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToNode(t *testing.T) {
	n, err := ToNode("Server", struct {
		Host string
		Port int
	}{"localhost", 8080})
	if err != nil {
		t.Fatal(err)
	}
	if n.Key != "Server" || len(n.Nodes) != 2 {
		t.Fatalf("node = %+v", n)
	}
	if n.ChildValue("Host") == nil || *n.ChildValue("Host") != "localhost" {
		t.Errorf("host = %v", n.ChildValue("Host"))
	}
	if n.ChildValue("Port") == nil || *n.ChildValue("Port") != "8080" {
		t.Errorf("port = %v", n.ChildValue("Port"))
	}
}

func TestToTextMarshaler(t *testing.T) {
	var v struct {
		Addr net.IP
		When time.Time
	}
	v.Addr = net.ParseIP("192.0.2.1")
	v.When = time.Date(2024, 5, 1, 2, 3, 4, 0, time.UTC)
	doc, err := ToDocument(&v)
	if err != nil {
		t.Fatal(err)
	}
	want := "Addr 192.0.2.1\nWhen 2024-05-01T02:03:04Z"
	if got := encode.MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var back struct {
		Addr net.IP
		When time.Time
	}
	if err := FromDocument(doc, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Addr.Equal(v.Addr) || !back.When.Equal(v.When) {
		t.Errorf("round trip diverged: %+v", back)
	}
}

type loop struct {
	Self *loop
}

func TestToCycle(t *testing.T) {
	l := &loop{}
	l.Self = l
	_, err := ToDocument(l)
	if err == nil || !strings.Contains(err.Error(), "cycle detected") {
		t.Fatalf("want cycle error, got %v", err)
	}
}

func TestToErrors(t *testing.T) {
	if _, err := ToDocument(nil); err == nil || !strings.Contains(err.Error(), "cannot be nil") {
		t.Fatalf("nil source: %v", err)
	}
	if _, err := ToDocument(42); err == nil || !strings.Contains(err.Error(), "cannot encode") {
		t.Fatalf("scalar source: %v", err)
	}
	var s struct {
		M [][]int
	}
	s.M = [][]int{{1}}
	_, err := ToDocument(s)
	if err == nil || !strings.Contains(err.Error(), "nested slices") {
		t.Fatalf("nested slice: %v", err)
	}
}
