package interfaces

import "errors"

// ErrRecordNotFound is returned by condition-guarded repository writes when
// the target record no longer exists.
var ErrRecordNotFound = errors.New("record not found")
