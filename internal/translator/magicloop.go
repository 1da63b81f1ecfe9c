package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/valpere/travelrelay/internal/normalizer"
)

// DefaultMagicLoopEndpoint is the hosted translation loop used by default.
const DefaultMagicLoopEndpoint = "https://magicloops.dev/api/loop/284a7aab-329a-4c54-b5e6-030e632ea73a/run"

// MagicLoopService posts requests to a hosted LLM loop whose response shape
// is not fixed; the translation is recovered with the normalizer.
type MagicLoopService struct {
	endpoint string
	client   *http.Client
}

// NewMagicLoopService builds the service. A zero timeout leaves the client
// without a deadline.
func NewMagicLoopService(endpoint string, timeout time.Duration) *MagicLoopService {
	if endpoint == "" {
		endpoint = DefaultMagicLoopEndpoint
	}
	return &MagicLoopService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *MagicLoopService) Name() string {
	return "magicloop"
}

func (s *MagicLoopService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	endpoint := s.endpoint
	if cfg.Endpoint != "" {
		endpoint = cfg.Endpoint
	}

	payload := map[string]string{
		"input_language":  req.SourceLang,
		"output_language": req.TargetLabel,
		"text":            req.Text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		result.Error = fmt.Sprintf("failed to marshal request: %v", err)
		return result, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Error = fmt.Sprintf("API returned status %d", resp.StatusCode)
		return result, fmt.Errorf("%w: API returned status %d %s", ErrUpstream, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read response: %v", err)
		return result, fmt.Errorf("%w: failed to read response: %v", ErrUpstream, err)
	}

	if !gjson.ValidBytes(body) {
		result.Error = "response is not valid JSON"
		return result, fmt.Errorf("%w: response is not valid JSON", ErrUpstream)
	}

	text, err := normalizer.Normalize(body, normalizer.Query{
		Text:        req.Text,
		InputLang:   req.SourceLang,
		OutputLang:  req.TargetLang,
		OutputLabel: req.TargetLabel,
	})
	if err != nil {
		result.Error = err.Error()
		result.Metadata = map[string]string{"raw_response": string(body)}
		return result, err
	}

	result.TranslatedText = text
	return result, nil
}

func (s *MagicLoopService) IsAvailable(ctx context.Context) error {
	if s.endpoint == "" {
		return fmt.Errorf("translation endpoint not configured")
	}
	return nil
}
