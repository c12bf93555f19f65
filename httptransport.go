package hostedpay

import (
	"encoding/json"
	"errors"
	"net/http"
)

func writeServiceError(w http.ResponseWriter, err error) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		writeJSONError(w, httpErr)
		return
	}
	writeJSONError(w, NewProcessingError("internal server error"))
}

func writeJSONError(w http.ResponseWriter, payload *Error) {
	if payload == nil {
		payload = NewProcessingError("internal server error")
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(payload.StatusCode())
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}
