package mutate

import (
	"errors"
	"fmt"
)

var ErrTitleRequired = errors.New("title required")

// UnknownActionError reports an action the reducer has no case for.
// It signals a programming error in the caller, never a user-facing condition.
type UnknownActionError struct {
	Type string
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action type: %q", e.Type)
}

// IsUnknownAction reports whether err is (or wraps) an UnknownActionError.
func IsUnknownAction(err error) bool {
	var ue UnknownActionError
	return errors.As(err, &ue)
}
