package colin

import (
	"bufio"
	"encoding/xml"
	"io"
	"math"
	"strconv"
	"strings"
)

// ResponseRoot is the name of the response document's root element.
const ResponseRoot = "ColinResponse"

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`
	indent    = " "
)

// FormatNumber renders v in its shortest round-trip decimal form. Integral
// values carry no fractional part ("2", not "2.0"). Magnitudes outside
// [1e-4, 1e21) use exponent notation. Overflowed values render as "inf",
// "-inf" or "nan".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-4 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatVector renders values space-delimited in order. Empty input yields "".
func FormatVector(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, " ")
}

// WriteResponse writes a ColinResponse document with one child per result,
// in order:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	 <ColinResponse>
//	  <FunctionValue>6</FunctionValue>
//	 </ColinResponse>
//
// Each nesting level adds one space of indentation and every line ends in a
// newline. With no results the root is written as an empty element.
func WriteResponse(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(xmlHeader)
	bw.WriteString("\n")

	if len(results) == 0 {
		bw.WriteString(indent + "<" + ResponseRoot + "/>\n")
		return bw.Flush()
	}

	bw.WriteString(indent + "<" + ResponseRoot + ">\n")
	for _, res := range results {
		bw.WriteString(indent + indent + "<" + res.Name + ">")
		if err := xml.EscapeText(bw, []byte(res.Text())); err != nil {
			return err
		}
		bw.WriteString("</" + res.Name + ">\n")
	}
	bw.WriteString(indent + "</" + ResponseRoot + ">\n")
	return bw.Flush()
}
