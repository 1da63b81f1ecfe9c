package logging

import "testing"

func TestNewProvider_Formats(t *testing.T) {
	for _, format := range []string{"", "console", "json", "pretty", " JSON "} {
		provider, err := NewProvider(Config{Level: "debug", Format: format})
		if err != nil {
			t.Errorf("format %q: unexpected error: %v", format, err)
			continue
		}
		if provider.GetLogger("relay") == nil {
			t.Errorf("format %q: expected named logger", format)
		}
		if provider.GetLogger("") == nil {
			t.Errorf("format %q: expected root logger", format)
		}
	}
}

func TestNewProvider_UnsupportedFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestNilProvider(t *testing.T) {
	var provider *Provider

	logger := provider.GetLogger("relay")
	if logger == nil {
		t.Fatal("expected no-op logger")
	}
	logger.Info("discarded", "key", "value")
}

func TestEnsure(t *testing.T) {
	if Ensure(nil) == nil {
		t.Error("expected no-op logger for nil input")
	}

	logger := NoOp()
	if Ensure(logger) != logger {
		t.Error("expected logger to be returned unchanged")
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"debug":   "debug",
		" INFO ":  "info",
		"warning": "warn",
		"error":   "error",
		"bogus":   "",
	}

	for input, want := range tests {
		got := normalizeLevel(input)
		if want == "" && got != "" {
			t.Errorf("normalizeLevel(%q): expected empty, got %q", input, got)
		}
		if want != "" && got == "" {
			t.Errorf("normalizeLevel(%q): expected a level", input)
		}
	}
}
