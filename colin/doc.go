// Package colin implements the application side of the COLIN evaluation
// protocol: an optimizer writes an XML request describing a point in a mixed
// real/integer/binary space and the outputs it wants, and this package answers
// with a ColinResponse document.
//
// # Reading Guide
//
// The pipeline runs leaf-first through these files:
//   - vars.go: MixedIntVars, the decision-variable point
//   - domain.go: Domain subtree -> MixedIntVars, strict numeric literal parsing
//   - requests.go: Requests subtree -> RequestSet
//   - application.go: the Application interface and the built-in TestFunction
//   - dispatch.go: closed request-name table, one Result per request
//   - response.go: Results -> ColinResponse XML
//   - adapter.go: Adapter.Process wires the steps together
//
// # Extension Point
//
// Application is the only interface a deployment needs to implement. Swap
// TestFunction for application-specific logic and pass it to NewAdapter;
// parsing, dispatch and serialization stay unchanged.
//
// Adding a new request name means adding a RequestKind, an entry in
// requestKinds and a handler in handlers (dispatch.go).
package colin
