// Package tree defines the node and document model for indented
// key-value configuration text.
//
// # Overview
//
// A configuration document is an ordered forest of nodes. Every node
// has a key, an optional value, and an ordered list of children.
// Repeated keys are preserved in order. A node whose value is the
// empty string is distinct from a node with no value at all, which is
// why Value is a *string: nil means no value.
//
// # Creating Documents
//
// Use Create and the With chainers to build documents in code:
//
//	doc := tree.NewDocument()
//	user := doc.Create("User").WithValue("gennyble")
//	user.Create("Email").WithValue("gen@nyble.dev")
//
// # Navigating
//
// Child returns the first child with a key, Children every one of
// them in order:
//
//	user := doc.Child("User")
//	limits := doc.Children("Limit")
//
// Find and Get address nodes by slash joined key paths:
//
//	iface := doc.Find("Interface/Address")
//	addr, ok := doc.Get("Interface/Address")
//
// # Comparison
//
// Nodes and documents compare structurally:
//
//	equal := tree.Compare(a, b) == 0
//
// # JSON Interoperability
//
// Documents marshal to a JSON array of {key, value, children}
// objects. The value property is absent exactly when the node has no
// value, so the projection loses nothing and unmarshaling it yields
// an equal document.
//
// # Related Packages
//
//   - github.com/confindent/go-confindent/parse - Parses text into documents
//   - github.com/confindent/go-confindent/encode - Writes documents back out as text
//   - github.com/confindent/go-confindent/gomap - Maps documents onto Go values
package tree
