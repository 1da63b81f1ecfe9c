package normalizer

import (
	"errors"
	"testing"
)

func hindiQuery() Query {
	return Query{
		Text:        "Hello",
		InputLang:   "english",
		OutputLang:  "hindi",
		OutputLabel: "Hindi",
	}
}

func TestNormalize_CandidateKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"exact output label", `{"Hindi": "नमस्ते"}`, "नमस्ते"},
		{"lowercase output name", `{"hindi": "नमस्ते"}`, "नमस्ते"},
		{"response key", `{"response": "नमस्ते"}`, "नमस्ते"},
		{"translated_text key", `{"translated_text": "नमस्ते"}`, "नमस्ते"},
		{"translation key", `{"translation": "नमस्ते"}`, "नमस्ते"},
		{"label beats response", `{"response": "second", "Hindi": "first"}`, "first"},
		{"lowercase beats response", `{"response": "second", "hindi": "first"}`, "first"},
		{"response beats translation", `{"translation": "second", "response": "first"}`, "first"},
		{"non-string candidate skipped", `{"Hindi": 42, "response": "नमस्ते"}`, "नमस्ते"},
		{"object candidate skipped", `{"Hindi": {"text": "x"}, "translation": "नमस्ते"}`, "नमस्ते"},
		{"duplicate key keeps last value", `{"Hindi": "old", "Hindi": "new"}`, "new"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize([]byte(tt.body), hindiQuery())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalize_LabelMatchIsCaseSensitive(t *testing.T) {
	q := Query{Text: "Hello", InputLang: "english", OutputLang: "hindi", OutputLabel: "Hindi"}

	got, err := Normalize([]byte(`{"HINDI": "wrong-case", "response": "नमस्ते"}`), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "नमस्ते" {
		t.Errorf("expected response key to win over wrong-case label, got %q", got)
	}
}

func TestNormalize_FallbackScanSkipsEchoes(t *testing.T) {
	q := Query{Text: "Bonjour", InputLang: "french", OutputLang: "spanish", OutputLabel: "spanish"}

	_, err := Normalize([]byte(`{"input_lang": "french", "output_lang": "spanish", "other": "Bonjour"}`), q)
	if !errors.Is(err, ErrNoTranslation) {
		t.Fatalf("expected ErrNoTranslation, got %v", err)
	}

	got, err := Normalize([]byte(`{"input_lang": "french", "output_lang": "spanish", "other": "Bonjour", "result": "Hola"}`), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hola" {
		t.Errorf("expected 'Hola', got %q", got)
	}
}

func TestNormalize_FallbackScanKeepsDocumentOrder(t *testing.T) {
	q := Query{Text: "Hello", InputLang: "english", OutputLang: "french", OutputLabel: "french"}

	got, err := Normalize([]byte(`{"zeta": "Bonjour", "alpha": "Salut", "count": 2}`), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bonjour" {
		t.Errorf("expected first member in document order, got %q", got)
	}
}

func TestNormalize_NotAnObject(t *testing.T) {
	bodies := []string{
		`["नमस्ते"]`,
		`"नमस्ते"`,
		`42`,
		`null`,
		`{}`,
		`not json`,
		``,
	}

	for _, body := range bodies {
		_, err := Normalize([]byte(body), hindiQuery())
		if !errors.Is(err, ErrNoTranslation) {
			t.Errorf("body %q: expected ErrNoTranslation, got %v", body, err)
		}
	}
}

func TestExtract_FailureMessage(t *testing.T) {
	if got := Extract([]byte(`["a", "b"]`), hindiQuery()); got != FailureMessage {
		t.Errorf("expected failure message, got %q", got)
	}
	if got := Extract([]byte(`{"response": "ok"}`), hindiQuery()); got != "ok" {
		t.Errorf("expected 'ok', got %q", got)
	}
}

func TestQuery_CandidateKeys(t *testing.T) {
	keys := hindiQuery().CandidateKeys()
	want := []string{"Hindi", "hindi", "response", "translated_text", "translation"}

	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], keys[i])
		}
	}
}
