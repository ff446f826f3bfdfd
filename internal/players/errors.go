package players

import "errors"

// ErrNotFound reports that no player row matched the requested id.
var ErrNotFound = errors.New("player not found")
