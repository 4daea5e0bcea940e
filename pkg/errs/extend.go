package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// IExtend is implemented by errors that can prepend context to their message
// without losing their type.
type IExtend interface {
	Extend(message string) error
}

// Extend prepends message to err. Typed errors of this package keep their type,
// any other error is wrapped.
func Extend(err error, message string) error {
	if err == nil {
		return nil
	}
	if ex, ok := err.(IExtend); ok {
		return ex.Extend(message)
	}
	return errors.Wrap(err, message)
}

func fmtExtend(self error, message string) string {
	return fmt.Sprintf("%s: %s", message, self)
}
