package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"google.golang.org/api/option"

	"github.com/valpere/travelrelay/internal/language"
)

// GoogleService translates through Google Cloud Translation. Language names
// are mapped to BCP 47 tags before the call.
type GoogleService struct{}

func NewGoogleService() *GoogleService {
	return &GoogleService{}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetTag, err := language.Tag(req.TargetLang)
	if err != nil {
		result.Error = fmt.Sprintf("invalid target language: %v", err)
		return result, fmt.Errorf("invalid target language: %w", err)
	}

	opts := []option.ClientOption{}
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}
	if cfg.ProjectID != "" {
		opts = append(opts, option.WithQuotaProject(cfg.ProjectID))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create client: %v", err)
		return result, fmt.Errorf("%w: failed to create client: %v", ErrUpstream, err)
	}
	defer client.Close()

	translateOpts := &translate.Options{Format: translate.Text}
	if sourceTag, err := language.Tag(req.SourceLang); err == nil {
		translateOpts.Source = sourceTag
	}

	translations, err := client.Translate(ctx, []string{req.Text}, targetTag, translateOpts)
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("%w: no translation returned", ErrUpstream)
	}

	result.TranslatedText = translations[0].Text
	result.Metadata = map[string]string{"target_tag": targetTag.String()}

	return result, nil
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	return nil
}
