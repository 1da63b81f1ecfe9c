package server

import (
	"encoding/json"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/valpere/travelrelay/internal"
)

const (
	missingParametersMessage = "Missing required parameters"
	missingParametersCode    = "MISSING_REQUIRED_PARAMETERS"
)

type errorResponse struct {
	Error string `json:"error"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	if r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// validateTranslationRequest requires every field to be present and non-empty.
func validateTranslationRequest(req internal.TranslationRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.InputLang, validation.Required),
		validation.Field(&req.OutputLang, validation.Required),
		validation.Field(&req.Text, validation.Required),
	)
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, missingParametersMessage).
		WithTextCode(missingParametersCode)
}
