package disbursement

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	// UnknownErrorCode is used when the remote error body carries no code
	UnknownErrorCode = "UNKNOWN_ERROR"
	// NoErrorMessage is used when the remote error body carries no message
	NoErrorMessage = "No error message provided"
)

// APIError is the single failure value for any unsuccessful MoMo response.
// Callers distinguish failures by Code.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsAPIError unwraps err into an *APIError
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAPIErrorCode reports whether err is an APIError with the given code
func IsAPIErrorCode(err error, code string) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == code
}

func isSuccessStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return true
	}
	return false
}

// normalizeResponse maps a MoMo response onto a Result or an *APIError.
// Success bodies are returned as decoded, whatever the JSON value; empty or unparsable
// bodies yield an empty Result, never an error.
// Failure bodies that are not a JSON object yield UNKNOWN_ERROR with the raw body as message.
func normalizeResponse(statusCode int, body []byte) (*Result, error) {
	if isSuccessStatus(statusCode) {
		value, err := decodeJSON(body)
		if err != nil {
			return EmptyResult(), nil
		}
		return NewResult(value), nil
	}

	apiErr := &APIError{StatusCode: statusCode, Code: UnknownErrorCode, Message: NoErrorMessage}

	value, err := decodeJSON(body)
	payload, isObject := value.(map[string]interface{})
	if err != nil || !isObject {
		apiErr.Message = string(body)
		return nil, apiErr
	}
	if code, ok := stringField(payload, "code"); ok {
		apiErr.Code = code
	}
	if message, ok := stringField(payload, "message"); ok {
		apiErr.Message = message
	}
	return nil, apiErr
}

// decodeJSON decodes exactly one JSON value. Empty bodies and trailing data are errors.
func decodeJSON(body []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON value")
	}
	return value, nil
}

func stringField(payload map[string]interface{}, key string) (string, bool) {
	value, ok := payload[key]
	if !ok || value == nil {
		return "", false
	}
	if s, ok := value.(string); ok {
		return s, true
	}
	return fmt.Sprint(value), true
}
