package middleware

import (
	"log/slog"
	"net/http"
	"testing"
)

func TestHeaderGroup(t *testing.T) {
	t.Parallel()

	h := http.Header{
		"Content-Type":  {"application/json"},
		"Authorization": {"Bearer abc.def.ghi"},
		"X-Hook-Secret": {"s3cret"},
		"Accept":        {"text/plain", "application/json"},
		"Cookie":        {"session=1"},
	}

	g := headerGroup(h)
	if g.Key != "headers" {
		t.Fatalf("Key = %q, want headers", g.Key)
	}
	if g.Value.Kind() != slog.KindGroup {
		t.Fatalf("Kind = %v, want group", g.Value.Kind())
	}

	want := []struct{ key, val string }{
		{"Accept", "text/plain,application/json"},
		{"Authorization", redacted},
		{"Content-Type", "application/json"},
		{"Cookie", redacted},
		{"X-Hook-Secret", redacted},
	}
	got := g.Value.Group()
	if len(got) != len(want) {
		t.Fatalf("len(group) = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Key != w.key || got[i].Value.String() != w.val {
			t.Errorf("group[%d] = %s=%q, want %s=%q", i, got[i].Key, got[i].Value.String(), w.key, w.val)
		}
	}
}

func TestHeaderGroup_Empty(t *testing.T) {
	t.Parallel()

	if got := headerGroup(http.Header{}).Value.Group(); len(got) != 0 {
		t.Errorf("len(group) = %d, want 0", len(got))
	}
}
