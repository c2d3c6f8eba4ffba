package objects

import "errors"

// Sentinel errors returned by the object store and the record decoders.
// Callers match on them with errors.Is; the wrapped messages carry the
// hash or field that triggered the failure.
var (
	// ErrNotFound indicates that no object with the requested hash
	// exists in the repository's object space.
	ErrNotFound = errors.New("object not found")

	// ErrCorruptObject indicates that an object record exists but its
	// bytes do not decode cleanly, or its content no longer matches
	// the hash it is stored under.
	ErrCorruptObject = errors.New("corrupt object")

	// ErrStorageUnavailable indicates that the underlying filesystem
	// rejected a read or write for reasons other than absence.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
