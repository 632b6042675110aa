package dispatch

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies one class of dispatch failure.
type Code string

const (
	// CodeToolNotFound — the requested tool name is absent from the registry.
	CodeToolNotFound Code = "tool_not_found"
	// CodeInvalidArguments — caller arguments failed schema validation, or
	// the command itself rejected its input.
	CodeInvalidArguments Code = "invalid_arguments"
	// CodeResourceNotFound — the command ran but the referenced notebook,
	// source, note, etc. does not exist.
	CodeResourceNotFound Code = "resource_not_found"
	// CodeExecutionError — the command failed for reasons not classifiable
	// as not-found or invalid input.
	CodeExecutionError Code = "execution_error"
	// CodeExecutionTimeout — the command did not complete within the bound.
	CodeExecutionTimeout Code = "execution_timeout"
)

// Error is the typed failure of one dispatch. Validation errors carry the
// offending field; execution errors carry captured process output in Detail.
type Error struct {
	Code    Code
	Message string
	Field   string
	Detail  string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %q)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsError unwraps err into a dispatch *Error.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HTTPStatus maps an error code onto the HTTP status the API surface returns.
func HTTPStatus(code Code) int {
	switch code {
	case CodeToolNotFound, CodeResourceNotFound:
		return http.StatusNotFound
	case CodeInvalidArguments:
		return http.StatusBadRequest
	case CodeExecutionTimeout:
		return http.StatusGatewayTimeout
	case CodeExecutionError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func notFoundError(tool string) *Error {
	return &Error{Code: CodeToolNotFound, Message: fmt.Sprintf("tool %q is not registered", tool)}
}

func argumentError(field, format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArguments, Field: field, Message: fmt.Sprintf(format, args...)}
}
