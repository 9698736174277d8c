package logs

// Span identifies one evaluated command or one session in log records.
type Span string

type spanKey struct{}

var SpanKey spanKey
