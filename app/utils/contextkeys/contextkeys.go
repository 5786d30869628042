package contextkeys

// RequestId keys the per-request UUID in request contexts.
type RequestId struct{}
