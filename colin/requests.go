package colin

import "encoding/xml"

// Request is one named output the optimizer asked for, with the attributes of
// its element. Attribute values are not validated here.
type Request struct {
	Name       string
	Attributes map[string]string
}

// RequestSet holds requests in the order they first appear. Names are unique.
type RequestSet struct {
	Requests []Request
	index    map[string]int
}

// NewRequestSet creates an empty RequestSet.
func NewRequestSet() *RequestSet {
	return &RequestSet{
		Requests: make([]Request, 0),
		index:    make(map[string]int),
	}
}

// Add inserts a request. Re-adding a name keeps its original position and
// replaces its attributes.
func (rs *RequestSet) Add(name string, attrs map[string]string) {
	if attrs == nil {
		attrs = map[string]string{}
	}
	if pos, ok := rs.index[name]; ok {
		rs.Requests[pos].Attributes = attrs
		return
	}
	rs.index[name] = len(rs.Requests)
	rs.Requests = append(rs.Requests, Request{Name: name, Attributes: attrs})
}

// Get returns the request with the given name.
func (rs *RequestSet) Get(name string) (Request, bool) {
	pos, ok := rs.index[name]
	if !ok {
		return Request{}, false
	}
	return rs.Requests[pos], true
}

// Len returns the number of distinct requests.
func (rs *RequestSet) Len() int {
	return len(rs.Requests)
}

// ParseRequests builds a RequestSet from the direct children of a Requests
// element: each child's tag becomes a request name and its attributes (keyed
// by local name) the request's attributes. Namespace declarations are not
// request attributes and are skipped.
func ParseRequests(requests *Element) *RequestSet {
	rs := NewRequestSet()
	for i := range requests.Children {
		child := &requests.Children[i]
		attrs := make(map[string]string, len(child.Attrs))
		for _, a := range child.Attrs {
			if isNamespaceDecl(a.Name) {
				continue
			}
			attrs[a.Name.Local] = a.Value
		}
		rs.Add(child.Name(), attrs)
	}
	return rs
}

// isNamespaceDecl reports whether name is xmlns or xmlns:prefix.
func isNamespaceDecl(name xml.Name) bool {
	return name.Space == "xmlns" || (name.Space == "" && name.Local == "xmlns")
}
