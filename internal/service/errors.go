package service

import (
	"errors"
	"fmt"

	"delivery-wallet/pkg/apperror"
)

// storeErr maps a repository failure to an AppError. Errors that already
// carry an AppError (transient store failures) pass through unchanged so
// the retry layer still sees them.
func storeErr(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}

// errorCode returns the AppError code of err, or "internal".
func errorCode(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "internal"
}
