// Package twistycube simulates order-N twisty cube puzzles. It tracks
// which piece occupies which position, how each piece is oriented, and
// applies quarter-turn twists submitted directly or as move notation.
//
// # Features
//
//   - Any order from 1x1x1 upward, even and odd
//   - Outer, inner, wide, slice (M E S) and whole-cube (x y z) twists
//   - Notation parser with grouping: "(R U R' U')3 F2"
//   - Undo and redo through a twist queue
//   - Seedable shuffles, solved-state and progress checks
//   - Validator and solver hooks
//
// # Quick Start
//
//	cube, err := twistycube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube.OnTwist(func(r twistycube.TwistResult) {
//	    fmt.Println("Twist:", r.Twist, "moves:", r.MoveCounter)
//	})
//
//	if _, err := cube.TwistNotation("R U R' U'"); err != nil {
//	    log.Fatal(err)
//	}
//	cube.Settle()
//
//	fmt.Println(cube)
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Driving Twists
//
// Submitting a twist only queues it. The cube applies at most one twist
// per call to Advance, which lets a renderer animate between the states
// before and after each twist. Settle applies everything still queued.
//
//	cube.Twist(twistycube.R)
//	cube.Twist(twistycube.NewLayerTwist(twistycube.Front, -1, 2, 3))
//	for {
//	    r, ok := cube.Advance()
//	    if !ok {
//	        break
//	    }
//	    animate(r.Relocations)
//	}
//
//	cube.Undo()   // queues the inverse of the last twist
//	cube.Settle()
//	cube.Redo()
//	cube.Settle()
//
// # Frame
//
// Pieces live on an N×N×N lattice. X grows toward Right, Y toward Up and
// Z toward Front; a piece at (x, y, z) has address (x·N + y)·N + z.
// Twists turn clockwise as seen from outside their face.
//
// # Predefined Twists
//
//	twistycube.R      // Right clockwise
//	twistycube.RPrime // Right counter-clockwise
//	twistycube.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package twistycube
