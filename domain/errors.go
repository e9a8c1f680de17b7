package domain

// ValidationError rejects malformed input before any I/O is performed.
type ValidationError struct {
	Field string
	Err   string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Err
}

// SignalSourceError represents a failed read from one signal source. It is
// non-fatal: the aggregator substitutes an empty contribution and proceeds.
type SignalSourceError struct {
	Source string
	Op     string
	Err    string
}

func (e *SignalSourceError) Error() string {
	return e.Source + "." + e.Op + ": " + e.Err
}

// RetrievalError represents a failed scoring engine call. It is fatal for
// the request; no retry is performed inside the pipeline.
type RetrievalError struct {
	Op  string
	Err string
}

func (e *RetrievalError) Error() string {
	return "retrieval: " + e.Op + ": " + e.Err
}
