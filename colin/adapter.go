package colin

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/colin-opt/colin-adapter/colin/trace"
)

// Adapter runs one request/response exchange: parse the request document,
// dispatch every request against App and serialize the results.
type Adapter struct {
	App           Application
	MaxInputBytes int64                // <= 0 means DefaultMaxInputBytes
	Trace         *trace.DispatchTrace // optional
	Log           *logrus.Entry        // optional; defaults to the standard logger
}

// NewAdapter creates an Adapter answering requests with app.
func NewAdapter(app Application) *Adapter {
	return &Adapter{
		App:           app,
		MaxInputBytes: DefaultMaxInputBytes,
	}
}

func (a *Adapter) logger() *logrus.Entry {
	if a.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return a.Log
}

// Evaluate parses the request document read from r and returns one Result per
// request. A document without a Domain or Requests element fails with
// ErrMissingDomain or ErrMissingRequests.
func (a *Adapter) Evaluate(r io.Reader) ([]Result, error) {
	log := a.logger()

	doc, err := ReadDocument(r, a.MaxInputBytes)
	if err != nil {
		return nil, err
	}
	domainElem := doc.Find("Domain")
	if domainElem == nil {
		return nil, ErrMissingDomain
	}
	requestsElem := doc.Find("Requests")
	if requestsElem == nil {
		return nil, ErrMissingRequests
	}

	point, dropped := ParseDomain(domainElem)
	for _, d := range dropped {
		log.Warnf("Dropping %s token %q: %v", d.Tag, d.Token, d.Err)
	}
	nr, ni, nb := point.Dimensions()
	log.Debugf("Parsed point with %d reals, %d integers, %d bits", nr, ni, nb)
	log.Tracef("Point:\n%s", point)

	requests := ParseRequests(requestsElem)
	log.Debugf("Parsed %d requests", requests.Len())

	results := NewDispatcher(a.App, a.Trace).Dispatch(point, requests)
	for _, res := range results {
		if res.Kind == ResultError {
			log.Warnf("Unsupported request %q", res.Name)
		}
	}
	return results, nil
}

// Process reads a request document from r and writes the ColinResponse to w.
// Nothing is written to w unless the whole response was built.
func (a *Adapter) Process(r io.Reader, w io.Writer) error {
	results, err := a.Evaluate(r)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteResponse(&buf, results); err != nil {
		return fmt.Errorf("building response: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
