package server

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"

	"github.com/valpere/travelrelay/internal"
	"github.com/valpere/travelrelay/internal/places"
)

const maxBodyBytes = 1 << 20

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

type placeStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiStatus := "API key missing"
	if s.photos != nil && s.photos.HasAPIKey() {
		apiStatus = "API key loaded"
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Message: "Server is running. " + apiStatus,
	})
}

func (s *Server) handleTranslatePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req internal.TranslationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.logger.Error("invalid translation request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	s.logger.Info("received translation request",
		"input_lang", req.InputLang,
		"output_lang", req.OutputLang,
		"text_length", len(req.Text),
	)

	if err := validateTranslationRequest(req); err != nil {
		if goerrors.IsCategory(err, goerrors.CategoryValidation) {
			s.logger.Error("missing required parameters", "error", err)
			writeError(w, http.StatusBadRequest, missingParametersMessage)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	translated := s.translator.Translate(r.Context(), req)
	s.logger.Info("translation finished", "translated_text", translated)
	writeJSON(w, http.StatusOK, translateResponse{TranslatedText: translated})
}

func (s *Server) handlePlacePhotos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Missing place name parameter")
		return
	}

	if s.photos == nil {
		s.logger.Error("place photos requested without a photo finder", "query", query)
		writeError(w, http.StatusInternalServerError, places.ErrMissingAPIKey.Error())
		return
	}

	s.logger.Info("searching for place photo", "query", query)

	photo, err := s.photos.FindPhoto(r.Context(), query)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, photo)
	case errors.Is(err, places.ErrNotFound):
		writeJSON(w, http.StatusNotFound, placeStatusResponse{
			Status:  internal.PlaceStatusNotFound,
			Message: fmt.Sprintf("No place found for: %s", query),
		})
	case errors.Is(err, places.ErrNoPhotos):
		writeJSON(w, http.StatusNotFound, placeStatusResponse{
			Status:  internal.PlaceStatusNoPhotos,
			Message: fmt.Sprintf("No photos available for: %s", query),
		})
	default:
		s.logger.Error("place photos error", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
