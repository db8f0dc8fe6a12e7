package command

import (
	"errors"
	"fmt"

	"github.com/pkordes/contactbook/internal/domain"
)

// User-facing messages.
const (
	MessagePersonsListed      = "%d persons listed!"
	MessageListedAll          = "Listed all persons"
	MessageTagAdded           = "Tag added to Contact"
	MessageProjectAdded       = "Project added to Contact"
	MessageTagsRemoved        = "Removed %d tag(s) from %s"
	MessageNoTagsMatched      = "%s has none of the given tags or projects"
	MessageNothingToRemove    = "At least one tag or project to remove must be given"
	MessageAbsentPhoneNumber  = "No contact with the given phone number exists"
	MessageDuplicatePhone     = "More than one contact has the phone number %s"
	MessageSnapshotSaved      = "Snapshot saved to %s"
	MessageFilePermissionFmt  = "Could not save data to file %s due to insufficient permissions to write to the file or the folder."
	MessageFileOpsErrorFmt    = "Could not save data due to the following error: %s"
	MessageUnexpectedErrorFmt = "Something went wrong: %s"
)

// Error is a command failure carrying one human-readable message.
// Err keeps the cause for logging and errors.Is checks; it is never shown.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func newError(err error, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Err: err}
}

// storageError maps a failed write of location to the permission or the
// generic file template. Non-storage errors get the unexpected template.
func storageError(err error, location string) *Error {
	switch {
	case errors.Is(err, domain.ErrPermission):
		return newError(err, MessageFilePermissionFmt, location)
	case errors.Is(err, domain.ErrIO):
		return newError(err, MessageFileOpsErrorFmt, rootCause(err))
	default:
		return newError(err, MessageUnexpectedErrorFmt, rootCause(err))
	}
}

// rootCause returns the message of the underlying cause of err, dropping the
// "pkg.Type.Method:" prefixes added while wrapping. Where a sentinel was
// joined with its cause ("%w: %w") the cause, which comes last, is used.
func rootCause(err error) string {
	for {
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			errs := u.Unwrap()
			if len(errs) == 0 {
				return err.Error()
			}
			return errs[len(errs)-1].Error()
		case interface{ Unwrap() error }:
			next := u.Unwrap()
			if next == nil {
				return err.Error()
			}
			err = next
		default:
			return err.Error()
		}
	}
}
