package twistycube

import "fmt"

// Progress summarizes how close a cube is to solved.
type Progress struct {
	// FaceSolved[d] is true when face d shows only its palette color.
	FaceSolved    [6]bool
	Faces         int
	PiecesInPlace int
	Pieces        int
	Solved        bool
}

// Percent returns the share of pieces in place, 0 to 100.
func (p Progress) Percent() float64 {
	if p.Pieces == 0 {
		return 0
	}
	return 100 * float64(p.PiecesInPlace) / float64(p.Pieces)
}

// String returns a short summary such as "4/6 faces, 73.1% pieces".
func (p Progress) String() string {
	if p.Solved {
		return "solved"
	}
	return fmt.Sprintf("%d/6 faces, %.1f%% pieces", p.Faces, p.Percent())
}

// Progress computes per-face and per-piece progress.
func (c *Cube) Progress() Progress {
	var p Progress
	for _, d := range AllDirections {
		want := c.cfg.palette[d]
		solved := true
		for _, col := range FaceColors(c.Face(d).Pieces, d) {
			if col != want {
				solved = false
				break
			}
		}
		p.FaceSolved[d] = solved
		if solved {
			p.Faces++
		}
	}
	p.Pieces = len(c.pieces)
	for _, piece := range c.pieces {
		if piece.InPlace() {
			p.PiecesInPlace++
		}
	}
	p.Solved = c.IsSolved()
	return p
}
