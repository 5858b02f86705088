package docs

import (
	"sort"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	t.Parallel()
	topics := Topics()
	if len(topics) == 0 {
		t.Fatal("no topics bundled")
	}
	if !sort.StringsAreSorted(topics) {
		t.Errorf("topics not sorted: %v", topics)
	}
	for _, want := range []string{"backend", "presenting", "uploads"} {
		found := false
		for _, got := range topics {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing topic %q in %v", want, topics)
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()
	body, ok := Get("Presenting")
	if !ok || !strings.Contains(body, "recap present") {
		t.Fatalf("Get(Presenting) = %q, %v", body, ok)
	}
	if _, ok := Get("no-such-topic"); ok {
		t.Error("Get(no-such-topic) should miss")
	}
	if _, ok := Get(""); ok {
		t.Error("Get(empty) should miss")
	}
}

func TestRenderFallbacks(t *testing.T) {
	t.Parallel()
	if got := Render("", 80); got != "" {
		t.Errorf("Render(empty) = %q", got)
	}
	if got := Render("plain text", 80); got == "" {
		t.Error("Render dropped content")
	}
}
