package errors

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// CodeQueryError is reported when a failure did not come from the driver
// with a code of its own.
const CodeQueryError = "QUERY_ERROR"

// QueryError is the single failure kind of the API: a statement could not be
// executed. Code and Message are taken from the driver when it supplied them.
type QueryError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// FromQuery classifies err. Postgres errors keep their condition name (for
// example foreign_key_violation), or the raw SQLSTATE when the code is not
// one lib/pq knows; everything else becomes QUERY_ERROR with its text.
func FromQuery(err error) *QueryError {
	if err == nil {
		return nil
	}

	var qErr *QueryError
	if errors.As(err, &qErr) {
		return qErr
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := pqErr.Code.Name()
		if code == "" {
			code = string(pqErr.Code)
		}
		if code == "" {
			code = CodeQueryError
		}
		return &QueryError{Code: code, Message: pqErr.Message, Err: err}
	}

	return &QueryError{Code: CodeQueryError, Message: err.Error(), Err: err}
}

// BadRequest wraps a failure that happened before any statement ran, such as
// an unreadable request body.
func BadRequest(err error) *QueryError {
	return &QueryError{Code: CodeQueryError, Message: err.Error(), Err: err}
}
