package translator

import (
	"context"
	"errors"
	"time"
)

// ErrUpstream marks failures talking to the translation API itself:
// transport errors, non-2xx statuses and undecodable bodies.
var ErrUpstream = errors.New("translation upstream request failed")

type ServiceConfig struct {
	Credentials string        `mapstructure:"credentials" json:"credentials"`
	ProjectID   string        `mapstructure:"project_id" json:"project_id"`
	Endpoint    string        `mapstructure:"endpoint" json:"endpoint"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
}

// TranslateRequest is an already normalized request: SourceLang and
// TargetLang are trimmed lowercase names, TargetLabel is the resolved form.
type TranslateRequest struct {
	Text        string `json:"text"`
	SourceLang  string `json:"source_lang"`
	TargetLang  string `json:"target_lang"`
	TargetLabel string `json:"target_label"`
}

type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Metadata       map[string]string `json:"metadata"`
	Latency        time.Duration     `json:"latency"`
	Error          string            `json:"error,omitempty"`
}

type TranslationService interface {
	Name() string
	Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
}
