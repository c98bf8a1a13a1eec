package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

var errorStatuses = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNoFileProvided, http.StatusBadRequest, "NoFileProvided"},
	{domain.ErrUnsupportedFile, http.StatusBadRequest, "UnsupportedFile"},
	{domain.ErrInvalidContext, http.StatusBadRequest, "InvalidContext"},
	{domain.ErrInput, http.StatusBadRequest, "InvalidInput"},
	{domain.ErrMissingArtifact, http.StatusNotFound, "MissingArtifact"},
	{domain.ErrNotFound, http.StatusNotFound, "NotFound"},
	{domain.ErrConflict, http.StatusConflict, "Conflict"},
	{domain.ErrStorage, http.StatusInternalServerError, "StorageError"},
	{domain.ErrStageInvocation, http.StatusBadGateway, "StageInvocationError"},
}

func errorStatus(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.code
		}
	}
	return http.StatusInternalServerError, "InternalError"
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, code := errorStatus(err)

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}

	writeJSON(w, log, status, ErrorResponse{Code: code, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("failed to marshal response", slog.String("err", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
