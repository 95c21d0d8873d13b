package store

import "errors"

// ErrTreeNotFound is wrapped into the error any Finder in this package
// returns when an object id has no known tree, so callers can distinguish
// "absent" from a genuine backend failure via errors.Is.
var ErrTreeNotFound = errors.New("store: tree not found")

// ErrBackend is wrapped into the error Disk returns when the underlying
// loose-object directory fails for a reason other than the object being
// absent (a permissions error, a corrupt zlib stream, and so on).
var ErrBackend = errors.New("store: backend error")
