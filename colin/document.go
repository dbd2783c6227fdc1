package colin

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxInputBytes bounds the size of a request document.
const DefaultMaxInputBytes int64 = 16 << 20

var (
	// ErrMissingDomain is returned when the request has no Domain element.
	ErrMissingDomain = errors.New("request document has no Domain element")
	// ErrMissingRequests is returned when the request has no Requests element.
	ErrMissingRequests = errors.New("request document has no Requests element")
	// ErrInputTooLarge is returned when the request exceeds the configured size limit.
	ErrInputTooLarge = errors.New("request document exceeds size limit")
)

// Element is a generic XML element: its name, attributes in document order,
// its own character data and its child elements. Nested text belongs to the
// child that holds it, not to the parent.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Element  `xml:",any"`
}

// Name returns the element's local tag name.
func (e *Element) Name() string {
	return e.XMLName.Local
}

// TrimmedText returns the element's direct character data without surrounding whitespace.
func (e *Element) TrimmedText() string {
	return strings.TrimSpace(e.Text)
}

// Find returns the first element named name in document order (pre-order,
// starting with e itself), or nil.
func (e *Element) Find(name string) *Element {
	if e.XMLName.Local == name {
		return e
	}
	for i := range e.Children {
		if found := e.Children[i].Find(name); found != nil {
			return found
		}
	}
	return nil
}

// ReadDocument decodes a whole XML document from r. Documents longer than
// maxBytes fail with ErrInputTooLarge; maxBytes <= 0 means DefaultMaxInputBytes.
func ReadDocument(r io.Reader, maxBytes int64) (*Element, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading request document: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrInputTooLarge, maxBytes)
	}

	var root Element
	decoder := xml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding request document: %w", err)
	}
	return &root, nil
}
