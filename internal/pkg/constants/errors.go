package constants

import "net/http"

// CodedError is an error carrying the HTTP status it should surface with.
// The api error handler unwraps down to the first CodedError it finds.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string { return e.msg }

func (e *CodedError) Code() int { return e.code }

var (
	ErrDBNotFound        = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized      = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthCookie = NewCodedError("missing auth cookie", http.StatusUnauthorized)
	ErrUnknownDomain     = NewCodedError("unknown ingestion domain", http.StatusBadRequest)
	ErrBadUpload         = NewCodedError("invalid upload", http.StatusBadRequest)
)
