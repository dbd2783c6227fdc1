package trace

// DispatchSummary aggregates statistics from a DispatchTrace.
type DispatchSummary struct {
	TotalRequests    int
	SupportedCount   int
	UnsupportedCount int
	TotalValues      int
	KindDistribution map[string]int // request kind → count
	Unsupported      []string       // unsupported request names, in dispatch order
}

// Summarize computes aggregate statistics from a DispatchTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(dt *DispatchTrace) *DispatchSummary {
	summary := &DispatchSummary{
		KindDistribution: make(map[string]int),
	}
	if dt == nil {
		return summary
	}

	summary.TotalRequests = len(dt.Records)
	for _, r := range dt.Records {
		summary.TotalValues += r.Values
		if r.Supported {
			summary.SupportedCount++
			summary.KindDistribution[r.Kind]++
		} else {
			summary.UnsupportedCount++
			summary.Unsupported = append(summary.Unsupported, r.Request)
		}
	}

	return summary
}
