package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// GeneralErrorKey is the errors-map key used when a failure is not tied
	// to a single field, e.g. an unparseable request body.
	GeneralErrorKey = "general"

	InvalidRequestStructure = "invalid request structure"
)

// Error is a terminal, user-facing request outcome. Every failure produced by
// the resolve/guard/validate pipeline is returned as an Error value and
// rendered exactly once; none of them are retriable.
type Error interface {
	Status() int
	Body() gin.H
}

type apiError struct {
	status  int
	message string
}

func (e *apiError) Status() int { return e.status }

func (e *apiError) Body() gin.H {
	return gin.H{"message": e.message}
}

// NewNotFoundError reports a missing entity of the given kind
// ("project", "task", "comment").
func NewNotFoundError(kind string) Error {
	return &apiError{
		status:  http.StatusNotFound,
		message: fmt.Sprintf("This %s does not exist", kind),
	}
}

// NewOwnershipError reports a failed ownership or parent/child check. The
// message is caller-supplied so the two failure classes stay distinguishable.
func NewOwnershipError(message string) Error {
	return &apiError{status: http.StatusUnauthorized, message: message}
}

func NewUnauthenticatedError() Error {
	return &apiError{status: http.StatusUnauthorized, message: "Unauthenticated."}
}

func NewInvalidCredentialsError() Error {
	return &apiError{status: http.StatusUnauthorized, message: "Invalid credentials"}
}

func NewInternalError() Error {
	return &apiError{status: http.StatusInternalServerError, message: "Server Error"}
}

// ValidationError carries the complete set of field violations for a request
// body. The summary is the first violation plus a count of the remaining ones.
type ValidationError struct {
	summary string
	fields  map[string][]string
}

func NewValidationError(summary string, fields map[string][]string) *ValidationError {
	return &ValidationError{summary: summary, fields: fields}
}

// NewMalformedBodyError is the validation error produced when the request body
// cannot be decoded at all.
func NewMalformedBodyError() *ValidationError {
	return &ValidationError{
		summary: InvalidRequestStructure,
		fields:  map[string][]string{GeneralErrorKey: {InvalidRequestStructure}},
	}
}

func (e *ValidationError) Status() int { return http.StatusUnprocessableEntity }

func (e *ValidationError) Body() gin.H {
	return gin.H{"message": e.summary, "errors": e.fields}
}

// HandleError writes the error to the client and aborts the handler chain.
func HandleError(err Error, c *gin.Context) {
	c.AbortWithStatusJSON(err.Status(), err.Body())
}
