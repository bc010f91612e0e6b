package tree

import (
	"strings"
	"testing"
)

func buildDoc() *Document {
	doc := NewDocument()
	user := doc.Create("User").WithValue("gennyble")
	user.Create("Email").WithValue("gen@nyble.dev")
	user.Create("ID").WithValue("256")
	doc.Create("Limit").WithValue("10")
	doc.Create("Limit").WithValue("20")
	doc.Create("Flag")
	return doc
}

func TestChild(t *testing.T) {
	doc := buildDoc()
	user := doc.Child("User")
	if user == nil {
		t.Fatalf("no User root")
	}
	if user.ValueOr("") != "gennyble" {
		t.Errorf("User value = %q, want gennyble", user.ValueOr(""))
	}
	if doc.Child("Missing") != nil {
		t.Errorf("Child(Missing) != nil")
	}
	if email := user.Child("Email"); email.ValueOr("") != "gen@nyble.dev" {
		t.Errorf("Email value = %q", email.ValueOr(""))
	}

	// First match wins for duplicate keys.
	if limit := doc.Child("Limit"); limit.ValueOr("") != "10" {
		t.Errorf("Limit value = %q, want 10", limit.ValueOr(""))
	}
}

func TestChildren(t *testing.T) {
	doc := buildDoc()
	limits := doc.Children("Limit")
	if len(limits) != 2 {
		t.Fatalf("got %d Limit roots, want 2", len(limits))
	}
	if limits[0].ValueOr("") != "10" || limits[1].ValueOr("") != "20" {
		t.Errorf("Limit values = %q, %q", limits[0].ValueOr(""), limits[1].ValueOr(""))
	}
	if got := doc.Children("Missing"); len(got) != 0 {
		t.Errorf("Children(Missing) = %v", got)
	}
}

func TestHasChild(t *testing.T) {
	doc := buildDoc()
	if !doc.HasChild("Flag") {
		t.Errorf("HasChild(Flag) = false")
	}
	if doc.HasChild("Missing") {
		t.Errorf("HasChild(Missing) = true")
	}
}

func TestChildValue(t *testing.T) {
	doc := buildDoc()
	if v := doc.ChildValue("User"); v == nil || *v != "gennyble" {
		t.Errorf("ChildValue(User) = %v", v)
	}
	// A valueless child and a missing child both yield nil.
	if v := doc.ChildValue("Flag"); v != nil {
		t.Errorf("ChildValue(Flag) = %q, want nil", *v)
	}
	if v := doc.ChildValue("Missing"); v != nil {
		t.Errorf("ChildValue(Missing) = %q, want nil", *v)
	}
}

func TestValueHelpers(t *testing.T) {
	n := New("Key")
	if n.HasValue() {
		t.Errorf("new node has a value")
	}
	n.SetValue("")
	if !n.HasValue() {
		t.Errorf("empty value does not count as a value")
	}
	if got := n.ValueOr("fallback"); got != "" {
		t.Errorf("ValueOr = %q, want empty", got)
	}
	n.ClearValue()
	if got := n.ValueOr("fallback"); got != "fallback" {
		t.Errorf("ValueOr = %q, want fallback", got)
	}
}

func TestFind(t *testing.T) {
	doc := buildDoc()
	if n := doc.Find("User/Email"); n.ValueOr("") != "gen@nyble.dev" {
		t.Errorf("Find(User/Email) = %v", n)
	}
	if n := doc.Find("User/Missing"); n != nil {
		t.Errorf("Find(User/Missing) = %v", n)
	}
	if n := doc.Find(""); n != nil {
		t.Errorf("Find of empty path = %v", n)
	}
	if n := doc.FindDelim("User.ID", "."); n.ValueOr("") != "256" {
		t.Errorf("FindDelim(User.ID) = %v", n)
	}
	user := doc.Child("User")
	if n := user.Find("Email"); n.ValueOr("") != "gen@nyble.dev" {
		t.Errorf("node Find(Email) = %v", n)
	}
}

func TestGet(t *testing.T) {
	doc := buildDoc()
	if v, ok := doc.Get("User/ID"); !ok || v != "256" {
		t.Errorf("Get(User/ID) = %q, %v", v, ok)
	}
	if _, ok := doc.Get("Flag"); ok {
		t.Errorf("Get of valueless node reported ok")
	}
	if _, ok := doc.Get("User/Missing"); ok {
		t.Errorf("Get of missing path reported ok")
	}
}

func TestPath(t *testing.T) {
	doc := buildDoc()
	email := doc.Find("User/Email")
	if got := email.Path(); got != "User/Email" {
		t.Errorf("Path() = %q, want User/Email", got)
	}
	if got := doc.Child("Flag").Path(); got != "Flag" {
		t.Errorf("Path() = %q, want Flag", got)
	}
}

func TestVisit(t *testing.T) {
	doc := buildDoc()
	var pre []string
	err := doc.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, n.Key)
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Visit failed: %v", err)
	}
	want := "User Email ID Limit Limit Flag"
	if got := strings.Join(pre, " "); got != want {
		t.Errorf("visit order = %q, want %q", got, want)
	}

	// A false return prunes the subtree.
	pre = pre[:0]
	doc.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, n.Key)
		}
		return n.Key != "User", nil
	})
	want = "User Limit Limit Flag"
	if got := strings.Join(pre, " "); got != want {
		t.Errorf("pruned visit order = %q, want %q", got, want)
	}
}

func TestClone(t *testing.T) {
	doc := buildDoc()
	cp := doc.Clone()
	if !doc.Equal(cp) {
		t.Fatalf("clone not equal to original")
	}
	cp.Child("User").Child("ID").SetValue("512")
	if v, _ := doc.Get("User/ID"); v != "256" {
		t.Errorf("mutating the clone changed the original")
	}
	if cp.Child("User").Child("ID").Parent != cp.Child("User") {
		t.Errorf("clone parent links not rewired")
	}
}

func TestAppendReparents(t *testing.T) {
	doc := NewDocument()
	host := doc.Create("Host")
	port := New("Port").WithValue("22")
	host.Append(port)
	if port.Parent != host {
		t.Errorf("Append did not set parent")
	}
	if got := port.Path(); got != "Host/Port" {
		t.Errorf("Path() = %q, want Host/Port", got)
	}
}
