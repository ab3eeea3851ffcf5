package service

import (
	"errors"

	apperrors "github.com/tcacomm/tca-server/internal/errors"
)

// storeFault surfaces a repository or session-store failure. Errors the data
// layer already classified (timeout, canceled, conflict, validation) keep
// their code; anything unclassified is wrapped as unavailable.
func storeFault(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, message)
}
