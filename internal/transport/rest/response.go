package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// okBody is embedded in every successful response.
type okBody struct {
	Success bool `json:"success"`
}

var okResp = okBody{Success: true}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	okBody
	Error  string          `json:"error"`
	Reason string          `json:"reason,omitempty"`
	Fields []fieldErrorDTO `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeStateError(w http.ResponseWriter, status int, message, reason string) {
	writeJSON(w, status, errorResponse{Error: message, Reason: reason})
}

func writeValidation(w http.ResponseWriter, verr *domain.ValidationError) {
	fields := make([]fieldErrorDTO, len(verr.Errors))
	for i, fe := range verr.Errors {
		fields[i] = fieldErrorDTO{Field: fe.Field, Message: fe.Message}
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
}

// decodeJSON reads a JSON body of at most maxBytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return fmt.Errorf("decode body: %w", err)
	}
	if dec.Decode(&struct{}{}) != io.EOF {
		return errors.New("decode body: trailing data")
	}
	return nil
}

var errBodyTooLarge = errors.New("request body too large")

func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
