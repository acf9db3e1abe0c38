package rest

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Success         bool   `json:"success"`
	Error           string `json:"error"`
	Field           string `json:"field,omitempty"`
	PaymentStatusID string `json:"payment_status_id,omitempty"`
	ResponseCode    string `json:"processor_response_code,omitempty"`
	Retriable       bool   `json:"is_retriable,omitempty"`
}
