package httpx

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response with status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeFailure reports a failed product or auth operation. These endpoints
// always answer 200; the outcome lives in the body.
func writeFailure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": message})
}

// writeEmployeeError reports a failed employee operation with a real status
// code and the error text in the body.
func writeEmployeeError(w http.ResponseWriter, status int, errText string) {
	writeJSON(w, status, map[string]any{"success": false, "error": errText})
}
