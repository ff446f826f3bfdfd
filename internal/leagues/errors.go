package leagues

import "errors"

// ErrNotFound reports that no league row matched the requested id.
var ErrNotFound = errors.New("league not found")
