package logs

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWrapSpan(t *testing.T) {
	err := errors.New("foo")

	ctx := context.Background()
	if wrapped := WrapSpan(ctx, err); wrapped != err {
		t.Fatalf("got %v", wrapped)
	}

	ctx = context.WithValue(ctx, SpanKey, Span("bar"))
	wrapped := WrapSpan(ctx, err)
	if !errors.Is(wrapped, err) {
		t.Fatalf("got %v", wrapped)
	}
	if !strings.Contains(wrapped.Error(), "span: bar") {
		t.Fatalf("got %v", wrapped)
	}
}
