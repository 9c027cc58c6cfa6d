// internal/util/errors.go
// Definisi error aplikasi standar + taksonomi error domain IPR/VLP

package util

import (
	"errors"
	"fmt"
)

const (
	CodeBadInput      = "bad_input"
	CodeNotFound      = "not_found"
	CodeInternal      = "internal"
	CodeDomain        = "domain"        // input fisik tidak valid
	CodeConfiguration = "configuration" // metode/kombinasi ef-ef2 tidak dikenal
)

type AppError struct {
	Code    string // e.g., "bad_input", "domain", "configuration"
	Message string
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func BadInput(msg string) AppError { return AppError{Code: CodeBadInput, Message: msg} }
func NotFound(msg string) AppError { return AppError{Code: CodeNotFound, Message: msg} }
func Internal(msg string) AppError { return AppError{Code: CodeInternal, Message: msg} }

// Domain dipakai untuk input fisik yang tidak valid (tekanan <= 0, pembagian nol, dst).
func Domain(format string, args ...any) AppError {
	return AppError{Code: CodeDomain, Message: fmt.Sprintf(format, args...)}
}

// Configuration dipakai untuk nama metode yang tidak dikenal atau kombinasi ef/ef2 yang tidak valid.
func Configuration(format string, args ...any) AppError {
	return AppError{Code: CodeConfiguration, Message: fmt.Sprintf(format, args...)}
}

// CodeOf mengembalikan Code dari AppError di rantai err, atau "" jika tidak ada.
func CodeOf(err error) string {
	var ae AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

func IsDomain(err error) bool        { return CodeOf(err) == CodeDomain }
func IsConfiguration(err error) bool { return CodeOf(err) == CodeConfiguration }

// HTTPStatus memetakan kode error ke status HTTP.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeBadInput, CodeConfiguration:
		return 400
	case CodeNotFound:
		return 404
	case CodeDomain:
		return 422
	}
	return 500
}
