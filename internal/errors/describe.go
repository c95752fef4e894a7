package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/cristianoliveira/userdeck/internal/domain"
)

// Describe turns err into a short message for people. Known domain errors
// get a fixed wording; anything else keeps its own text.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, domain.ErrUserNotFound):
		return "user not found"
	case stderrors.Is(err, domain.ErrInvalidUserID):
		return "invalid user id"
	default:
		return err.Error()
	}
}

// Report sends err to h as an error, prefixed with action when given.
// A nil err is ignored.
func Report(h ErrorHandler, action string, err error) {
	if err == nil || h == nil {
		return
	}
	msg := Describe(err)
	if action != "" {
		msg = fmt.Sprintf("%s: %s", action, msg)
	}
	h.Error(msg)
}
