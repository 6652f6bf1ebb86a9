package logs

type Span string

type spanKeyType struct{}

// SpanKey is the context key carrying the current Span; the Handler
// annotates every record with it.
var SpanKey spanKeyType
