package sanitize_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-styler/pkg/sanitize"
)

func TestDisplay_StripsScripts(t *testing.T) {
	got := sanitize.Clean(sanitize.Display(), `<script>alert(1)</script>2.61`)
	if strings.Contains(got, "script") || strings.Contains(got, "alert") {
		t.Fatalf("script survived: %q", got)
	}
	if !strings.Contains(got, "2.61") {
		t.Fatalf("text content lost: %q", got)
	}
}

func TestDisplay_KeepsInlineMarkup(t *testing.T) {
	got := sanitize.Clean(sanitize.Display(), `<em>low</em> <strong>high</strong>`)
	if got != `<em>low</em> <strong>high</strong>` {
		t.Fatalf("inline markup altered: %q", got)
	}
}

func TestDisplay_DropsBlockElements(t *testing.T) {
	got := sanitize.Clean(sanitize.Display(), `<div onclick="x()">value</div>`)
	if got != "value" {
		t.Fatalf("expected bare text, got %q", got)
	}
}

func TestDisplay_IsMemoized(t *testing.T) {
	if sanitize.Display() != sanitize.Display() {
		t.Fatalf("expected the same policy instance")
	}
}

func TestClean_NilPolicyPassthrough(t *testing.T) {
	raw := `<script>alert(1)</script>`
	if got := sanitize.Clean(nil, raw); got != raw {
		t.Fatalf("nil policy should pass through, got %q", got)
	}
	if got := sanitize.Clean(sanitize.Display(), ""); got != "" {
		t.Fatalf("empty input should stay empty, got %q", got)
	}
}
