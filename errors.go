package twistycube

import "errors"

// Sentinel errors for the twistycube package.
var (
	// Construction errors
	ErrInvalidOrder = errors.New("twistycube: cube order must be at least 1")
	ErrInvalidColor = errors.New("twistycube: invalid color")

	// Parsing errors
	ErrInvalidNotation = errors.New("twistycube: invalid move notation")
	ErrInvalidTwist    = errors.New("twistycube: invalid twist")

	// Hook errors
	ErrNoSolver = errors.New("twistycube: no solver configured")
)
