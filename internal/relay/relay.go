// Package relay forwards translation requests to the configured backend and
// turns every outcome into a string for the caller.
package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/valpere/travelrelay/internal"
	"github.com/valpere/travelrelay/internal/language"
	"github.com/valpere/travelrelay/internal/logging"
	"github.com/valpere/travelrelay/internal/normalizer"
	"github.com/valpere/travelrelay/internal/translator"
)

type Relay struct {
	service translator.TranslationService
	config  translator.ServiceConfig
	logger  logging.Logger
}

func New(service translator.TranslationService, config translator.ServiceConfig, logger logging.Logger) *Relay {
	return &Relay{
		service: service,
		config:  config,
		logger:  logging.Ensure(logger),
	}
}

// Translate never fails: upstream and normalization failures come back as
// human-readable strings in place of the translation.
func (r *Relay) Translate(ctx context.Context, req internal.TranslationRequest) string {
	serviceReq := translator.TranslateRequest{
		Text:        req.Text,
		SourceLang:  language.Normalize(req.InputLang),
		TargetLang:  language.Normalize(req.OutputLang),
		TargetLabel: language.Resolve(req.OutputLang),
	}

	r.logger.Debug("sending translation request",
		"service", r.service.Name(),
		"input_language", serviceReq.SourceLang,
		"output_language", serviceReq.TargetLabel,
	)

	res, err := r.service.Translate(ctx, r.config, serviceReq)
	if err == nil && res == nil {
		err = fmt.Errorf("%s returned no result", r.service.Name())
	}
	if err != nil {
		return r.describe(err, res)
	}

	r.logger.Info("translation completed",
		"service", res.ServiceName,
		"latency", res.Latency,
	)
	return res.TranslatedText
}

func (r *Relay) describe(err error, res *translator.ServiceResult) string {
	switch {
	case errors.Is(err, normalizer.ErrNoTranslation):
		raw := ""
		if res != nil {
			raw = res.Metadata["raw_response"]
		}
		r.logger.Warn("could not find translation in response", "response", raw)
		return normalizer.FailureMessage
	case errors.Is(err, translator.ErrUpstream):
		r.logger.Error("translation API request failed", "error", err)
		return fmt.Sprintf("Translation service error: %v", err)
	default:
		r.logger.Error("unexpected translation error", "error", err)
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}
