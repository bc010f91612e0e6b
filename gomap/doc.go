// Package gomap converts between parsed documents and Go values with
// reflection, in the spirit of encoding/json.
//
// # Usage
//
// Unmarshal a document into a struct with FromDocument:
//
//	type Host struct {
//		Name     string `conf:",value"`
//		HostName string
//		Port     uint16
//		Forward  []string `conf:"LocalForward"`
//		Compress bool     `conf:"Compression"`
//	}
//	type Config struct {
//		Hosts []Host `conf:"Host"`
//	}
//
//	doc, _ := parse.ParseString(text)
//	var cfg Config
//	err := gomap.FromDocument(doc, &cfg)
//
// ToDocument is the inverse; it emits struct fields in declaration
// order and map entries sorted by key. For a single typed value, As
// and ChildAs convert one node without declaring a struct:
//
//	id, err := gomap.ChildAs[uint](doc.Child("User"), "ID")
//
// # Type Mapping
//
// Keys bind to struct fields by name, or to map entries for
// map[string]T targets. Values convert with strconv; types
// implementing encoding.TextUnmarshaler and encoding.TextMarshaler,
// such as net.IP and time.Time, use those instead. A node without a
// value converts from the empty string.
//
// Three forms are special:
//
//   - bool fields follow presence: a bare key reads as true, and a
//     true field writes a bare key while false writes nothing.
//   - *string fields keep the distinction between a missing value and
//     an empty one: a bare key reads as nil.
//   - slice fields gather repeated keys, one element per node, and
//     write one node per element. []byte is the exception; it holds
//     the value bytes directly.
//
// # Struct Tags
//
// The "conf" tag names the key for a field, with flags after a comma:
//
//	Port     uint16  `conf:"Port"`
//	Name     string  `conf:",value"`    // the node's own value
//	Comment  string  `conf:",omitempty"` // skip zero values on marshal
//	Secret   string  `conf:"-"`          // never mapped
//
// Embedded structs without a tag flatten one level into their parent.
//
// # Related Packages
//
//   - github.com/confindent/go-confindent/tree - document and node model
//   - github.com/confindent/go-confindent/parse - text to documents
//   - github.com/confindent/go-confindent/encode - documents to text
package gomap
