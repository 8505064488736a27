package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authgate/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError converts a service error into a stable JSON error response.
// Unknown errors are logged and collapse into a generic 500 so internals
// never leak to the caller.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int

	switch {
	case errors.Is(err, common.ErrorInvalidInput),
		errors.Is(err, common.ErrorDuplicateCredential),
		errors.Is(err, common.ErrorInvalidCredentials):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthenticated),
		errors.Is(err, common.ErrorInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
	default:
		s.logger.Error(r.Context(), "internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: common.ErrorInternal.Error()})
		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}
