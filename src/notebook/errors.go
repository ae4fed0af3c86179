package notebook

import "errors"

var (
	// ErrIO marks failures reading or writing notebook files.
	ErrIO = errors.New("notebook: io error")
	// ErrSerialization marks documents that cannot be encoded, decoded or
	// validated against the notebook schema.
	ErrSerialization = errors.New("notebook: serialization error")
)
