package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeTimeout             = "TIMEOUT"
	CodeUnknownError        = "UNKNOWN_ERROR"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)

// ApiError is the only error type that leaves this package. Transport
// failures, upstream error bodies, and timeouts are all folded into it.
type ApiError struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func (e *ApiError) Error() string {
	return e.Message
}

// IsSuccessful classifies a call result for the circuit breaker. A response
// the upstream produced itself, 4xx included, keeps the breaker closed;
// timeouts, transport failures, and 5xx count against it.
func IsSuccessful(err error) bool {
	if err == nil {
		return true
	}

	var apiErr *ApiError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == CodeTimeout || apiErr.Code == CodeUnknownError {
		return false
	}

	return apiErr.Status < http.StatusInternalServerError
}

func timeoutError() *ApiError {
	return &ApiError{
		Message: "Request timed out",
		Status:  http.StatusRequestTimeout,
		Code:    CodeTimeout,
	}
}

func unavailableError() *ApiError {
	return &ApiError{
		Message: "Upstream service unavailable",
		Status:  http.StatusServiceUnavailable,
		Code:    CodeUpstreamUnavailable,
	}
}

func unknownError(err error) *ApiError {
	return &ApiError{
		Message: err.Error(),
		Status:  http.StatusInternalServerError,
		Code:    CodeUnknownError,
	}
}

func upstreamError(status int, raw []byte) *ApiError {
	var body struct {
		Message string      `json:"message"`
		Code    string      `json:"code"`
		Details interface{} `json:"details"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return &ApiError{
			Message: fmt.Sprintf("HTTP Error: %d", status),
			Status:  status,
		}
	}

	return &ApiError{
		Message: body.Message,
		Status:  status,
		Code:    body.Code,
		Details: body.Details,
	}
}
