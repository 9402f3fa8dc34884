package deform

import "errors"

var (
	// ErrInvalidGrid is returned when a grid has fewer than one column or row,
	// or a non-positive spacing.
	ErrInvalidGrid = errors.New("invalid grid configuration")

	// ErrInvalidBrush is returned for negative brush parameters.
	ErrInvalidBrush = errors.New("invalid brush parameters")

	// ErrMissingCollaborator is returned when a session is created without a
	// surface or hit tester.
	ErrMissingCollaborator = errors.New("missing required collaborator")

	// ErrVertexOutOfRange signals a brushed index outside the vertex buffer.
	// It indicates an internal consistency failure, not bad input.
	ErrVertexOutOfRange = errors.New("brushed vertex index out of range")
)
