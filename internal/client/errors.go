package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error codes sent by the server.
const (
	CodeValidation    = "VALIDATION"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeRateLimited   = "RATE_LIMITED"
	CodeUpstream      = "UPSTREAM"
)

var (
	// ErrUnreachable marks requests that got no usable answer: dial and
	// timeout failures, or a response that is not the API's JSON.
	ErrUnreachable = errors.New("server unreachable")

	// ErrBadCredentials is returned by Login when the server rejects the
	// email and password pair.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrSignedOut is returned by calls that need a session when none is held.
	ErrSignedOut = errors.New("not signed in")
)

// FieldError is one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is an error response from the server.
type APIError struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"error"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// HasField reports whether the server rejected the named field.
func (e *APIError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Message turns err into the sentence shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	switch {
	case errors.Is(err, ErrBadCredentials):
		return "Incorrect email or password."
	case errors.Is(err, ErrSignedOut):
		return "Please sign in first."
	case errors.Is(err, ErrUnreachable), errors.Is(err, context.DeadlineExceeded):
		return "Could not reach the server."
	case errors.As(err, &apiErr):
		return apiMessage(apiErr)
	default:
		return "Something went wrong. Please try again."
	}
}

func apiMessage(e *APIError) string {
	switch {
	case e.Status == http.StatusTooManyRequests:
		return "Too many attempts. Please try again later."
	case e.Code == CodeValidation:
		if e.HasField("email") {
			return "Invalid email format."
		}
		if len(e.Fields) > 0 {
			return fmt.Sprintf("%s: %s.", e.Fields[0].Field, e.Fields[0].Message)
		}
		return e.Message
	case e.Code == CodeAlreadyExists:
		return "An account with this email or username already exists."
	case e.Code == CodeUnauthorized:
		return "Your session has expired. Please sign in again."
	case e.Code == CodeNotFound:
		return "Nothing was found."
	case e.Code == CodeUpstream:
		return "Recipes are unavailable right now. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}
