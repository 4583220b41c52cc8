package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, status bool, message, errCode string, data, errors any) {
	response := Response{
		Status:  status,
		Message: message,
		Code:    errCode,
		Data:    data,
		Errors:  errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, "", data, nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, "", data, nil)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message, errCode string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, message, errCode, nil, errors)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message, errCode string) {
	ResponseJSON(w, http.StatusUnauthorized, false, message, errCode, nil, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message, errCode string) {
	ResponseJSON(w, http.StatusForbidden, false, message, errCode, nil, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message, errCode string) {
	ResponseJSON(w, http.StatusNotFound, false, message, errCode, nil, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message, errCode string) {
	ResponseJSON(w, http.StatusConflict, false, message, errCode, nil, nil)
}

// returns 402 Payment Required
func ResponsePaymentRequired(w http.ResponseWriter, message, errCode string) {
	ResponseJSON(w, http.StatusPaymentRequired, false, message, errCode, nil, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, false, message, "INTERNAL", nil, nil)
}
