package common

import (
	"fmt"
	"io"

	"go-bank-teller/logger"

	"github.com/sirupsen/logrus"
)

// AppError pairs a user-facing message with the underlying cause. The message
// goes to the console, the cause to the log.
type AppError struct {
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(message string, err error) *AppError {
	return &AppError{
		Message: message,
		Err:     err,
	}
}

// Print reports the error on the console writer and logs the internal cause.
func (e *AppError) Print(w io.Writer) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	fmt.Fprintf(w, "\n@@@ %s @@@\n", e.Message)
}
