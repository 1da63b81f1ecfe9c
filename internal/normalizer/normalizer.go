// Package normalizer extracts the translated string from the loosely shaped
// JSON documents returned by the translation upstream.
//
// The upstream schema is undocumented and has changed over time, so the
// extraction is heuristic: a short list of likely keys is tried first, then
// every string member is scanned in document order.
package normalizer

import (
	"errors"

	"github.com/tidwall/gjson"
)

// FailureMessage is returned to clients when no translation could be found.
const FailureMessage = "Translation failed. Please try again."

// ErrNoTranslation reports that the body held no usable string value.
var ErrNoTranslation = errors.New("no translation found in response")

// Query carries the request parameters the body is matched against.
// InputLang and OutputLang are the trimmed, lowercased names; OutputLabel is
// the resolved form that was sent upstream.
type Query struct {
	Text        string
	InputLang   string
	OutputLang  string
	OutputLabel string
}

// CandidateKeys returns the keys tried, in order, before falling back to a
// full scan.
func (q Query) CandidateKeys() []string {
	return []string{
		q.OutputLabel,
		q.OutputLang,
		"response",
		"translated_text",
		"translation",
	}
}

// Normalize returns the best-guess translation held in raw.
// Bodies that are not JSON objects yield ErrNoTranslation.
func Normalize(raw []byte, q Query) (string, error) {
	if !gjson.ValidBytes(raw) {
		return "", ErrNoTranslation
	}
	body := gjson.ParseBytes(raw)
	if !body.IsObject() {
		return "", ErrNoTranslation
	}

	// Repeated keys keep their first position and their last value.
	var order []string
	members := make(map[string]gjson.Result)
	body.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, seen := members[name]; !seen {
			order = append(order, name)
		}
		members[name] = value
		return true
	})

	for _, key := range q.CandidateKeys() {
		if value, ok := members[key]; ok && value.Type == gjson.String {
			return value.Str, nil
		}
	}

	for _, key := range order {
		value := members[key]
		if value.Type != gjson.String {
			continue
		}
		if value.Str == q.Text || value.Str == q.InputLang || value.Str == q.OutputLang {
			continue
		}
		return value.Str, nil
	}

	return "", ErrNoTranslation
}

// Extract is Normalize with the failure rendered as FailureMessage.
func Extract(raw []byte, q Query) string {
	text, err := Normalize(raw, q)
	if err != nil {
		return FailureMessage
	}
	return text
}
