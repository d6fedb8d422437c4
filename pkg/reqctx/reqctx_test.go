package reqctx

import (
	"context"
	"testing"
	"time"
)

func TestRequestMetaRoundTrip(t *testing.T) {
	meta := &RequestMeta{
		RequestID:   "req-123",
		ClientIP:    "10.0.0.9",
		UserAgent:   "test-agent",
		RequestedAt: time.Now(),
	}

	ctx := WithRequestMeta(context.Background(), meta)

	got, ok := RequestMetaFromContext(ctx)
	if !ok {
		t.Fatal("meta not found in context")
	}
	if got.RequestID != "req-123" || got.ClientIP != "10.0.0.9" {
		t.Errorf("meta = %+v", got)
	}
	if RequestIDFromContext(ctx) != "req-123" {
		t.Errorf("RequestIDFromContext = %q", RequestIDFromContext(ctx))
	}
}

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := RequestMetaFromContext(ctx); ok {
		t.Error("expected no meta on a bare context")
	}
	if RequestIDFromContext(ctx) != "" {
		t.Error("expected empty request id on a bare context")
	}
}
