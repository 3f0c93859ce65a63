package errors

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password. Deliberately one error for both so callers cannot tell
	// which accounts exist.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrUserNotFound is returned when a user record cannot be loaded.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound is returned when a product cannot be loaded.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound is returned when an order cannot be loaded or does not
	// belong to the requesting user.
	ErrOrderNotFound = errors.New("order not found")
)

// FieldError is one entry in the errors list of an ErrorResponse.
type FieldError struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the wire shape every error shares: {"errors":[{"msg":...}]}.
// Kept byte-compatible with the original API for existing clients.
type ErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// NewErrorResponse builds an ErrorResponse from one message per entry.
func NewErrorResponse(msgs ...string) ErrorResponse {
	out := ErrorResponse{Errors: make([]FieldError, 0, len(msgs))}
	for _, m := range msgs {
		out.Errors = append(out.Errors, FieldError{Msg: m})
	}
	return out
}

// FromValidationErrors converts validator failures into the per-field message
// list the register and login routes have always returned ("Name is
// required", one entry per field).
func FromValidationErrors(err error) ErrorResponse {
	return fromValidationErrors(err, " is required", " is invalid")
}

// FromValidationErrorsTitled is FromValidationErrors with the capitalization
// the address, catalog, order and payment routes use: "Flat is Required".
// The inconsistency is inherited; clients string-match on these messages.
func FromValidationErrorsTitled(err error) ErrorResponse {
	return fromValidationErrors(err, " is Required", " is Invalid")
}

func fromValidationErrors(err error, requiredSuffix, invalidSuffix string) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewErrorResponse("invalid request")
	}
	out := ErrorResponse{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out.Errors = append(out.Errors, FieldError{Msg: fe.Field() + requiredSuffix})
		default:
			out.Errors = append(out.Errors, FieldError{Msg: fe.Field() + invalidSuffix})
		}
	}
	return out
}

// HTTPError pairs a status code with a response body.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ToErrorResponse converts an HTTPError to the wire shape.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return NewErrorResponse(e.Message)
}

// MapErrorToHTTP maps domain errors to HTTP errors.
//
// The status convention is inherited from the original API and preserved for
// wire compatibility: conflicts, auth failures and not-found all answer 401;
// anything unexpected answers 500 with a generic message (the real error is
// logged server-side, never surfaced).
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserExists),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrOrderNotFound):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: err.Error()}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	}
}
