package myerr

import "net/http"

type Error struct {
	code int
	msg  string
}

func (e Error) Error() string {
	return e.msg
}

func (e Error) StatusCode() int {
	return e.code
}

func New(msg string) Error {
	return Error{
		code: http.StatusInternalServerError,
		msg:  msg,
	}
}

func NewWithCode(code int, msg string) Error {
	return Error{
		code: code,
		msg:  msg,
	}
}

func NotFound(msg string) Error {
	return NewWithCode(http.StatusNotFound, msg)
}

func BadRequest(msg string) Error {
	return NewWithCode(http.StatusBadRequest, msg)
}
