package colin

import (
	"fmt"

	"github.com/colin-opt/colin-adapter/colin/trace"
)

// UnsupportedRequestMessage is the text of the response element for a request
// name the dispatcher does not recognize.
const UnsupportedRequestMessage = "ERROR: Unsupported application request"

// RequestKind identifies a supported request.
type RequestKind string

const (
	KindFunctionValue    RequestKind = "FunctionValue"
	KindConstraintValues RequestKind = "ConstraintValues"
	KindGradient         RequestKind = "Gradient"
)

// requestKinds is the closed set of request names the dispatcher answers.
var requestKinds = map[string]RequestKind{
	"FunctionValue":    KindFunctionValue,
	"ConstraintValues": KindConstraintValues,
	"Gradient":         KindGradient,
}

// LookupRequestKind resolves a request name to its kind.
func LookupRequestKind(name string) (RequestKind, bool) {
	kind, ok := requestKinds[name]
	return kind, ok
}

// SupportedRequests returns the supported request names in a fixed order.
func SupportedRequests() []string {
	return []string{string(KindFunctionValue), string(KindConstraintValues), string(KindGradient)}
}

// ResultKind tells the serializer how to render a Result.
type ResultKind int

const (
	ResultScalar ResultKind = iota
	ResultVector
	ResultError
)

// Result is the answer to one request.
type Result struct {
	Name    string
	Kind    ResultKind
	Scalar  float64
	Vector  []float64
	Message string
}

// Text renders the result the way it appears in the response document.
func (r Result) Text() string {
	switch r.Kind {
	case ResultScalar:
		return FormatNumber(r.Scalar)
	case ResultVector:
		return FormatVector(r.Vector)
	case ResultError:
		return r.Message
	default:
		panic(fmt.Sprintf("unhandled result kind %d", r.Kind))
	}
}

// valueCount is the number of numeric values carried by the result.
func (r Result) valueCount() int {
	switch r.Kind {
	case ResultScalar:
		return 1
	case ResultVector:
		return len(r.Vector)
	default:
		return 0
	}
}

type handler func(app Application, p *MixedIntVars) Result

var handlers = map[RequestKind]handler{
	KindFunctionValue: func(app Application, p *MixedIntVars) Result {
		return Result{Kind: ResultScalar, Scalar: app.FunctionValue(p)}
	},
	KindConstraintValues: func(app Application, p *MixedIntVars) Result {
		return Result{Kind: ResultVector, Vector: app.ConstraintValues(p)}
	},
	KindGradient: func(app Application, p *MixedIntVars) Result {
		return Result{Kind: ResultVector, Vector: app.Gradient(p)}
	},
}

// Dispatcher answers a RequestSet against an Application.
type Dispatcher struct {
	app   Application
	trace *trace.DispatchTrace // nil when tracing is off
}

// NewDispatcher creates a Dispatcher for app. tr may be nil.
func NewDispatcher(app Application, tr *trace.DispatchTrace) *Dispatcher {
	return &Dispatcher{app: app, trace: tr}
}

// Dispatch returns one Result per request, in request order. Unrecognized
// names yield an error Result carrying UnsupportedRequestMessage; they never
// abort the remaining requests.
func (d *Dispatcher) Dispatch(p *MixedIntVars, rs *RequestSet) []Result {
	results := make([]Result, 0, rs.Len())
	for seq, req := range rs.Requests {
		var res Result
		kind, ok := requestKinds[req.Name]
		if ok {
			res = handlers[kind](d.app, p)
		} else {
			res = Result{Kind: ResultError, Message: UnsupportedRequestMessage}
		}
		res.Name = req.Name
		results = append(results, res)

		d.trace.Record(trace.DispatchRecord{
			Seq:       seq,
			Request:   req.Name,
			Kind:      string(kind),
			Supported: ok,
			Values:    res.valueCount(),
		})
	}
	return results
}
