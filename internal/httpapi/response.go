package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *apiError `json:"error,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Warn("write json failed", zap.Error(err), zap.String("requestId", payload.RequestID))
	}
}

func (s *Server) success(w http.ResponseWriter, r *http.Request, data any) {
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, RequestID: requestIDFrom(r.Context())})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.writeJSON(w, status, envelope{
		Error:     &apiError{Code: code, Message: message},
		RequestID: requestIDFrom(r.Context()),
	})
}
