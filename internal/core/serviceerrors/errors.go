package serviceerrors

import "errors"

type ErrorKind int

const (
	KindValidation ErrorKind = iota
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *ServiceError {
	return &ServiceError{Kind: KindValidation, Message: message}
}

// Wrap returns a ServiceError of the given kind that keeps err in its chain.
func Wrap(kind ErrorKind, err error) *ServiceError {
	return &ServiceError{Kind: kind, Message: err.Error(), Err: err}
}
