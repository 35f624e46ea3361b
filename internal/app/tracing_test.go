package app_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// Span tests swap the global TracerProvider, so they do not run in parallel.

func recordSpans(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return exporter
}

func spansNamed(exporter *tracetest.InMemoryExporter, name string) []tracetest.SpanStub {
	var out []tracetest.SpanStub
	for _, s := range exporter.GetSpans() {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

func TestVotingEngine_ReadSpans(t *testing.T) {
	exporter := recordSpans(t)
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.engine.CreateProposal(ctx, "Use X", "P", defaultPolicy())
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := f.engine.GetProposal(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	_, _, _ = f.engine.GetProposal(ctx, 404)
	if _, _, err := f.engine.ListPending(ctx); err != nil {
		t.Fatal(err)
	}

	gets := spansNamed(exporter, "VotingEngine.GetProposal")
	if len(gets) != 2 {
		t.Fatalf("GetProposal spans = %d, want 2", len(gets))
	}

	wantID := attribute.Int64("proposal.id", p.ID)
	found := false
	for _, kv := range gets[0].Attributes {
		if kv == wantID {
			found = true
		}
	}
	if !found {
		t.Errorf("GetProposal span attributes = %v, want %v", gets[0].Attributes, wantID)
	}
	if gets[0].Status.Code == codes.Error {
		t.Errorf("found proposal span status = %v, want unset", gets[0].Status)
	}
	if gets[1].Status.Code != codes.Error {
		t.Errorf("missing proposal span status = %v, want error", gets[1].Status)
	}

	if got := spansNamed(exporter, "VotingEngine.ListPending"); len(got) != 1 {
		t.Errorf("ListPending spans = %d, want 1", len(got))
	}
}
