// Package trace records how each request in a COLIN exchange was dispatched.
// This package has no dependencies on colin/; it stores pure data types.
package trace

// DispatchRecord captures a single dispatch decision.
type DispatchRecord struct {
	Seq       int    // position of the request in the request set
	Request   string // request name as it appeared in the document
	Kind      string // resolved request kind; empty when unsupported
	Supported bool
	Values    int // number of values produced (1 for a scalar, 0 for an error)
}
