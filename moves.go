package twistycube

// Predefined outer-layer twists.
//
// Example:
//
//	cube.Apply(twistycube.NewAlgorithm(twistycube.R, twistycube.U, twistycube.RPrime))
var (
	// Right face twists
	R      = NewTwist('R', 1)  // Right clockwise
	RPrime = NewTwist('R', -1) // Right counter-clockwise
	R2     = NewTwist('R', 2)  // Right 180

	// Left face twists
	L      = NewTwist('L', 1)
	LPrime = NewTwist('L', -1)
	L2     = NewTwist('L', 2)

	// Up face twists
	U      = NewTwist('U', 1)
	UPrime = NewTwist('U', -1)
	U2     = NewTwist('U', 2)

	// Down face twists
	D      = NewTwist('D', 1)
	DPrime = NewTwist('D', -1)
	D2     = NewTwist('D', 2)

	// Front face twists
	F      = NewTwist('F', 1)
	FPrime = NewTwist('F', -1)
	F2     = NewTwist('F', 2)

	// Back face twists
	B      = NewTwist('B', 1)
	BPrime = NewTwist('B', -1)
	B2     = NewTwist('B', 2)

	// Slice twists
	M = NewTwist('M', 1) // Middle, follows L
	E = NewTwist('E', 1) // Equator, follows D
	S = NewTwist('S', 1) // Standing, follows F

	// Whole-cube rotations
	X = NewTwist('X', 1) // follows R
	Y = NewTwist('Y', 1) // follows U
	Z = NewTwist('Z', 1) // follows F
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = NewAlgorithm(R, U, RPrime, UPrime)

// Inverse sexy move: U R U' R'
var InverseSexyMove = SexyMove.Inverse()

// T-perm algorithm
var TPerm = NewAlgorithm(R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime)
