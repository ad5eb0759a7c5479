package orchestra

import "errors"

var (
	// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported orchestration format")

	// ErrInvalidTag is returned for fields with a tag below 1.
	ErrInvalidTag = errors.New("invalid field tag")

	// ErrDuplicate is returned when a tag, name or id is defined twice.
	ErrDuplicate = errors.New("duplicate definition")

	// ErrInvalidPresence is returned for unknown presence values.
	ErrInvalidPresence = errors.New("invalid presence")

	// ErrInvalidRef is returned for member references that do not name
	// exactly one field, component or group.
	ErrInvalidRef = errors.New("invalid member reference")

	// ErrDanglingRef is returned when a member reference names an undefined
	// field, component or group.
	ErrDanglingRef = errors.New("dangling reference")

	// ErrCycle is returned when components or groups reference themselves.
	ErrCycle = errors.New("reference cycle")
)
