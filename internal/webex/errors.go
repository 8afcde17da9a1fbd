package webex

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx Webex API response. It provides
// structured access to the HTTP status code, the error message and tracking
// ID parsed from the response body, and the raw body for debugging.
type APIError struct {
	// StatusCode is the HTTP status code from the response.
	StatusCode int

	// Status is the HTTP status line (e.g., "404 Not Found").
	Status string

	// Message is the error message from the Webex API response body.
	Message string

	// TrackingID is the Webex tracking identifier for support debugging.
	TrackingID string

	// RawBody is the raw response body bytes, preserved for debugging.
	RawBody []byte

	// Err is an optional wrapped error for errors.Unwrap support.
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error: %d", e.StatusCode)
	if e.Message != "" {
		msg += " - " + e.Message
	}
	if e.TrackingID != "" {
		msg += " (trackingId: " + e.TrackingID + ")"
	}
	return msg
}

// Unwrap returns the wrapped error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// AuthError is returned when the token endpoint rejects the refresh-token
// exchange. It is distinct from APIError so callers can tell a credential
// problem apart from a failing API call made with a valid token.
type AuthError struct {
	// StatusCode is the HTTP status code from the token endpoint, if any.
	StatusCode int

	// Status is the HTTP status line from the token endpoint, if any.
	Status string

	// Message is the error code and description from the OAuth error body.
	Message string

	// RawBody is the raw token endpoint response body.
	RawBody []byte

	// Err is an optional wrapped error for errors.Unwrap support.
	Err error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	msg := "authentication failed"
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += " - " + e.Message
	}
	return msg
}

// Unwrap returns the wrapped error, if any.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// ProtocolError is returned when a response violates the expected shape:
// undecodable JSON, a token response without an access token, an empty
// items collection, or a finished report without a download URL.
type ProtocolError struct {
	// Op names the operation whose response was malformed.
	Op string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("protocol error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("protocol error: %s", e.Op)
}

// Unwrap returns the wrapped error, if any.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// apiErrorBody is used to parse the Webex API error response JSON.
type apiErrorBody struct {
	Message    string `json:"message"`
	TrackingID string `json:"trackingId"`
}

// NewAPIError creates a structured error from an HTTP response and its body.
// It parses the JSON body for message and trackingId fields when present.
func NewAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		RawBody:    body,
	}

	var parsed apiErrorBody
	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err == nil {
			apiErr.Message = parsed.Message
			apiErr.TrackingID = parsed.TrackingID
		}
		// If JSON parsing fails, leave Message empty; RawBody preserves the original
	}

	return apiErr
}

// IsAPIError reports whether err is a Webex API error response.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsAuthError reports whether err is a token exchange failure.
func IsAuthError(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// IsProtocolError reports whether err is a malformed-response error.
func IsProtocolError(err error) bool {
	var e *ProtocolError
	return errors.As(err, &e)
}

// StatusCode returns the HTTP status code carried by err, or 0 when err
// carries none.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.StatusCode
	}
	return 0
}
