package extract

// Record aggregates named extraction results into a single report, so a
// caller can merge several pattern and table extractions without extra
// plumbing.
type Record map[string]any

func (r Record) Attach(name string, value any) {
	r[name] = value
}
