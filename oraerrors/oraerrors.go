package oraerrors

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kataras/iris"
)

// IException provides the interface for
//   - user facing error message with status code
//   - raw error for tracking
type IException interface {
	ExceptionBody() map[string]interface{}
	ExceptionStatusCode() int
	RawException() error
}

type Error struct {
	IException
	Code       int
	Message    string
	StatusCode int
	RawError   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (Code = %v)", e.Message, e.Code)
}

func (e *Error) ExceptionBody() map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"error":   http.StatusText(e.StatusCode),
		"message": e.Message,
		"code":    e.Code,
	}
}

func (e *Error) ExceptionStatusCode() int {
	return e.StatusCode
}

func (e *Error) RawException() error {
	return e.RawError
}

// WithMsg modifies the user visible message
func (e Error) WithMsg(msg string) *Error {
	e.Message = msg
	return &e
}

// WithError attaches the raw error which is not exposed to the user.
// It is used for internal error tracking.
func (e Error) WithError(err error) *Error {
	e.RawError = err
	return &e
}

func New(code int, message string, statusCode int) *Error {
	return &Error{Code: code, Message: message, StatusCode: statusCode}
}

func NewInternalServerError(code int, message string) *Error {
	return New(code, message, iris.StatusInternalServerError)
}

func NewUnprocessableEntity(code int, message string) *Error {
	return New(code, message, iris.StatusUnprocessableEntity)
}

func NewNotFound(code int, message string) *Error {
	return New(code, message, iris.StatusNotFound)
}

func NewBadRequest(code int, message string) *Error {
	return New(code, message, iris.StatusBadRequest)
}

func NewServiceUnavailable(code int, message string) *Error {
	return New(code, message, iris.StatusServiceUnavailable)
}

func Format(err error) string {
	if oraerr, ok := err.(IException); ok && oraerr.RawException() != nil {
		return fmt.Sprintf("%v : %v", err.Error(), oraerr.RawException().Error())
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), strconv.FormatInt(int64(NotFound.Code), 10))
}

func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), strconv.FormatInt(int64(ParseError.Code), 10))
}

// code convention is http_status_code:custom_code where custom code starts from 10000
var (
	// 400
	RequestBodyLoadFailure = NewBadRequest(40010000, "request body format is invalid")
	InvalidRequestParam    = NewUnprocessableEntity(40010001, "request parameters are invalid")

	// 404
	NotFound = NewNotFound(40410000, "resource not found")

	// 500
	InternalServerError = NewInternalServerError(50010000, "internal server error occurred")
	// upstream provider payload did not match the expected shape
	ParseError = NewInternalServerError(50010001, "provider response could not be parsed")

	// 503
	Unavailable = NewServiceUnavailable(50310000, "service is unavailable")
)
