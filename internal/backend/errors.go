package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// StatusError is a non-2xx backend response with the server-supplied message
// when one was present
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Code, http.StatusText(e.Code))
}

// AccessRequiredError is the structured access-denial shape returned by the
// index-analysis endpoint. It is a distinct UI branch, not a generic failure:
// the caller may offer a follow-up access request, or report that one was
// already sent.
type AccessRequiredError struct {
	Details          string
	AlreadyRequested bool
}

func (e *AccessRequiredError) Error() string {
	if e.AlreadyRequested {
		return "access request already sent"
	}
	return "access required: " + e.Details
}

// errorEnvelope covers the error body shapes the backend emits
type errorEnvelope struct {
	Error                  string `json:"error"`
	Message                string `json:"message"`
	Detail                 string `json:"detail"`
	AccessRequestAvailable bool   `json:"access_request_available"`
	AccessRequestSent      bool   `json:"access_request_sent"`
	Details                string `json:"details"`
}

// decodeError turns a non-2xx response into the most specific error type the
// body allows
func decodeError(status int, body []byte) error {
	var env errorEnvelope
	if len(body) > 0 {
		_ = json.Unmarshal(body, &env)
	}

	if env.AccessRequestAvailable || env.AccessRequestSent {
		return &AccessRequiredError{
			Details:          env.Details,
			AlreadyRequested: env.AccessRequestSent,
		}
	}

	message := env.Message
	if message == "" {
		message = env.Detail
	}
	if message == "" {
		message = env.Error
	}
	return &StatusError{Code: status, Message: strings.TrimSpace(message)}
}
