package trace

// DispatchTrace collects dispatch records for one request document.
type DispatchTrace struct {
	RunID   string
	Records []DispatchRecord
}

// NewDispatchTrace creates a DispatchTrace ready for recording.
func NewDispatchTrace(runID string) *DispatchTrace {
	return &DispatchTrace{
		RunID:   runID,
		Records: make([]DispatchRecord, 0),
	}
}

// Record appends a dispatch record. Safe to call on a nil trace (no-op).
func (dt *DispatchTrace) Record(record DispatchRecord) {
	if dt == nil {
		return
	}
	dt.Records = append(dt.Records, record)
}
