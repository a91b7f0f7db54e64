package main

import (
	"encoding/json"
	"net/http"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/response"
)

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &response.ErrorResponse{Error: message})

}

func writeReport[T any](w http.ResponseWriter, win window, table T, message string) {
	resp := &response.APIResponse[response.ReportPayload[T]]{
		Success: true,
		Message: message,
		Data: response.ReportPayload[T]{
			Window: win.payload(),
			Table:  table,
		},
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
