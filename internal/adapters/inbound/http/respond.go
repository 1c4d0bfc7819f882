package http

import (
	"encoding/json"
	"net/http"
)

type errorCode string

const (
	errorCode_BadRequest           errorCode = "BAD_REQUEST"
	errorCode_NotFound             errorCode = "NOT_FOUND"
	errorCode_AssistantUnavailable errorCode = "assistant_unavailable"
	errorCode_Timeout              errorCode = "timeout"
	errorCode_Internal             errorCode = "INTERNAL_ERROR"
)

type errorResp struct {
	Error struct {
		Code    errorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

func newErrorResp(code errorCode, message string) errorResp {
	resp := errorResp{}
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err errorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case errorCode_BadRequest:
		statusCode = http.StatusBadRequest
	case errorCode_NotFound:
		statusCode = http.StatusNotFound
	case errorCode_AssistantUnavailable, errorCode_Timeout:
		statusCode = http.StatusServiceUnavailable
	}
	respondJSON(w, statusCode, err)
}
