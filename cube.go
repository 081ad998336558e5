package twistycube

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Solver produces an algorithm that solves the given cube.
type Solver interface {
	Solve(c *Cube) (Algorithm, error)
}

// TwistResult describes one applied twist.
type TwistResult struct {
	Twist       Twist  // rotation actually performed
	Source      *Twist // queue entry that produced it
	Undo        bool   // applied as the inverse of Source
	Shuffle     bool   // part of a Shuffle
	Counted     bool   // contributed to the move counter
	MoveCounter int    // counter after this twist
	Relocations []Relocation
}

type step struct {
	twist *Twist
	undo  bool
}

// Cube is an order-N puzzle state. It owns every piece and applies
// queued twists one at a time through Advance.
//
// A Cube is not safe for concurrent use.
type Cube struct {
	id    uuid.UUID
	order int
	grid  Grid
	cfg   *config
	log   *zap.Logger
	rng   *rand.Rand

	pieces []*Piece // indexed by address
	byID   []*Piece

	twists  *Queue[*Twist]
	replay  *Queue[*step]
	undoing bool
	busy    bool

	moveCounter int
	shuffling   map[*Twist]bool

	twistObservers   []func(TwistResult)
	shuffleObservers []func()
}

// New creates a solved cube of the given order.
func New(order int, opts ...Option) (*Cube, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.palette.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.seed
	if !cfg.seeded {
		seed = uint64(time.Now().UnixNano())
	}

	c := &Cube{
		id:    uuid.New(),
		order: order,
		grid:  Grid{Order: order},
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	c.log = cfg.logger.With(zap.String("cube", c.id.String()), zap.Int("order", order))
	c.twists = NewQueue[*Twist](c.validatorHook())
	c.replay = NewQueue[*step](nil)
	c.replay.SetUseHistory(false)
	c.build()

	c.log.Debug("cube created", zap.Int("pieces", len(c.pieces)))
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(order int, opts ...Option) *Cube {
	c, err := New(order, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Cube) build() {
	size := c.grid.Size()
	c.pieces = make([]*Piece, size)
	c.byID = make([]*Piece, size)
	for a := 0; a < size; a++ {
		p := newPiece(a, c.grid.Visible(c.grid.Coord(a)), c.cfg.palette)
		c.pieces[a] = p
		c.byID[a] = p
	}
	c.shuffling = make(map[*Twist]bool)
}

func (c *Cube) validatorHook() Validator[*Twist] {
	if c.cfg.validator == nil {
		return nil
	}
	fn := c.cfg.validator
	return func(t *Twist) []*Twist {
		out := fn(*t)
		if len(out) == 1 && out[0] == *t {
			return []*Twist{t}
		}
		ptrs := make([]*Twist, len(out))
		for i := range out {
			tw := out[i]
			ptrs[i] = &tw
		}
		return ptrs
	}
}

// ID returns the instance identifier used in log fields.
func (c *Cube) ID() uuid.UUID { return c.id }

// Order returns N.
func (c *Cube) Order() int { return c.order }

// Grid returns the address mapping for this cube.
func (c *Cube) Grid() Grid { return c.grid }

// Palette returns the configured face colors.
func (c *Cube) Palette() Palette { return c.cfg.palette }

// MoveCounter returns the number of counted twists, net of undos.
func (c *Cube) MoveCounter() int { return c.moveCounter }

// IsBusy reports whether a twist is being applied.
func (c *Cube) IsBusy() bool { return c.busy }

// IsShuffling reports whether shuffle twists are still pending.
func (c *Cube) IsShuffling() bool { return len(c.shuffling) > 0 }

// Pending returns the number of twists Advance will still apply.
func (c *Cube) Pending() int {
	if c.undoing {
		return c.replay.Pending()
	}
	return c.twists.Pending()
}

// History returns the applied twists that can be undone, oldest first.
func (c *Cube) History() []*Twist { return c.twists.History() }

// OnTwist registers a function called after every applied twist.
func (c *Cube) OnTwist(fn func(TwistResult)) {
	c.twistObservers = append(c.twistObservers, fn)
}

// OnShuffled registers a function called when the last twist of a
// shuffle has been applied.
func (c *Cube) OnShuffled(fn func()) {
	c.shuffleObservers = append(c.shuffleObservers, fn)
}

// Twist queues t and returns the queued entries. While undoing, the redo
// branch is abandoned first.
func (c *Cube) Twist(t Twist) ([]*Twist, error) {
	if !ValidBase(t.Base) {
		return nil, fmt.Errorf("%w: unknown base %q", ErrInvalidTwist, t.Base)
	}
	return c.submit([]Twist{t}), nil
}

// Apply queues every twist of a.
func (c *Cube) Apply(a Algorithm) []*Twist {
	return c.submit(a.twists)
}

// TwistNotation parses s and queues the result. Nothing is queued when
// parsing fails.
func (c *Cube) TwistNotation(s string) ([]*Twist, error) {
	a, err := ParseAlgorithm(s)
	if err != nil {
		return nil, err
	}
	return c.Apply(a), nil
}

func (c *Cube) submit(ts []Twist) []*Twist {
	if c.undoing {
		for _, t := range c.twists.Future() {
			delete(c.shuffling, t)
		}
		c.twists.Empty(false)
		c.replay.Empty(false)
		c.undoing = false
		c.log.Debug("redo branch abandoned")
	}
	ptrs := make([]*Twist, len(ts))
	for i := range ts {
		t := ts[i]
		ptrs[i] = &t
	}
	return c.twists.Enqueue(ptrs...)
}

// Undo schedules the inverse of the most recent twist. It returns false
// when there is nothing to undo.
func (c *Cube) Undo() bool {
	t, ok := c.twists.Undo()
	if !ok {
		return false
	}
	c.undoing = true
	c.replay.Enqueue(&step{twist: t, undo: true})
	c.log.Debug("undo scheduled", zap.Stringer("twist", *t))
	return true
}

// Redo schedules the most recently undone twist again. It returns false
// when there is nothing to redo. Undo steps still waiting to be applied
// stay queued ahead of the redo, so the replay runs in request order.
func (c *Cube) Redo() bool {
	if !c.undoing {
		return false
	}
	t, ok := c.twists.Redo()
	if !ok {
		return false
	}
	c.replay.Enqueue(&step{twist: t})
	c.log.Debug("redo scheduled", zap.Stringer("twist", *t))
	return true
}

// Advance applies at most one queued twist. It returns false when nothing
// is pending or a twist is already being applied.
func (c *Cube) Advance() (TwistResult, bool) {
	if c.busy {
		return TwistResult{}, false
	}
	var s step
	if c.undoing {
		next, ok := c.replay.Dequeue()
		if !ok {
			return TwistResult{}, false
		}
		s = *next
	} else {
		next, ok := c.twists.Dequeue()
		if !ok {
			return TwistResult{}, false
		}
		s = step{twist: next}
	}

	c.busy = true
	defer func() { c.busy = false }()

	applied := *s.twist
	if s.undo {
		applied = applied.Inverse()
	}
	relocs := c.rotate(applied)

	counted := applied.Counts(c.order)
	shuffle := c.shuffling[s.twist]
	if shuffle {
		counted = false
		c.twists.Purge(s.twist)
		delete(c.shuffling, s.twist)
	}
	if counted {
		if s.undo {
			c.moveCounter--
		} else {
			c.moveCounter++
		}
	}

	res := TwistResult{
		Twist:       applied,
		Source:      s.twist,
		Undo:        s.undo,
		Shuffle:     shuffle,
		Counted:     counted,
		MoveCounter: c.moveCounter,
		Relocations: relocs,
	}
	c.log.Debug("twist applied",
		zap.Stringer("twist", applied),
		zap.Bool("undo", s.undo),
		zap.Int("affected", len(relocs)),
		zap.Int("moves", c.moveCounter),
	)
	for _, fn := range c.twistObservers {
		fn(res)
	}
	if shuffle && len(c.shuffling) == 0 {
		c.log.Info("shuffle complete")
		for _, fn := range c.shuffleObservers {
			fn()
		}
	}
	return res, true
}

// Settle advances until nothing is pending and returns how many twists
// were applied.
func (c *Cube) Settle() int {
	n := 0
	for {
		if _, ok := c.Advance(); !ok {
			return n
		}
		n++
	}
}

// Shuffle queues n random twists. Shuffle twists are not counted and
// cannot be undone individually.
func (c *Cube) Shuffle(n int) Algorithm {
	alg := c.randomAlgorithm(n)
	for _, t := range c.submit(alg.twists) {
		c.shuffling[t] = true
	}
	c.log.Info("shuffle queued", zap.Int("twists", alg.Len()), zap.String("notation", alg.String()))
	return alg
}

var shuffleBases = [6]byte{'F', 'U', 'R', 'D', 'L', 'B'}
var shuffleAmounts = [3]int{1, -1, 2}

func (c *Cube) randomAlgorithm(n int) Algorithm {
	twists := make([]Twist, 0, n)
	var last byte
	for len(twists) < n {
		base := shuffleBases[c.rng.IntN(len(shuffleBases))]
		if base == last {
			continue
		}
		last = base
		layer := 1
		if c.order > 3 {
			layer = 1 + c.rng.IntN(c.order/2)
		}
		twists = append(twists, Twist{
			Base:       base,
			Amount:     shuffleAmounts[c.rng.IntN(len(shuffleAmounts))],
			StartLayer: layer,
			EndLayer:   layer,
		})
	}
	return Algorithm{twists: twists}
}

// Solve asks the configured Solver for an algorithm and queues it.
func (c *Cube) Solve() (Algorithm, error) {
	if c.cfg.solver == nil {
		return Algorithm{}, ErrNoSolver
	}
	alg, err := c.cfg.solver.Solve(c)
	if err != nil {
		return Algorithm{}, fmt.Errorf("solve: %w", err)
	}
	c.Apply(alg)
	c.log.Info("solution queued", zap.Int("twists", alg.Len()))
	return alg, nil
}

// Reset restores the solved state and clears every queue and counter.
func (c *Cube) Reset() {
	c.twists.Empty(true)
	c.replay.Empty(true)
	clear(c.shuffling)
	c.undoing = false
	c.moveCounter = 0
	c.build()
	c.log.Debug("cube reset")
}

// Clone returns an independent copy of the piece state and move counter.
// Queues are not copied.
func (c *Cube) Clone() *Cube {
	clone, _ := New(c.order,
		WithPalette(c.cfg.palette),
		WithLogger(c.cfg.logger),
		WithSolver(c.cfg.solver),
		WithValidator(c.cfg.validator),
		WithSeed(c.rng.Uint64()),
	)
	for i, p := range c.byID {
		cp := p.clone()
		clone.byID[i] = cp
		clone.pieces[cp.address] = cp
	}
	clone.moveCounter = c.moveCounter
	return clone
}

// Pieces returns the pieces in address order. Callers must not retain
// the slice across twists.
func (c *Cube) Pieces() []*Piece {
	return append([]*Piece(nil), c.pieces...)
}

// PieceAt returns the piece currently at address a.
func (c *Cube) PieceAt(a int) *Piece {
	return c.pieces[a]
}

// PieceByID returns the piece with the given permanent id.
func (c *Cube) PieceByID(id int) *Piece {
	return c.byID[id]
}

// Snapshot returns the state of every piece in address order.
func (c *Cube) Snapshot() []PieceState {
	out := make([]PieceState, len(c.pieces))
	for i, p := range c.pieces {
		out[i] = p.state()
	}
	return out
}

// Slice returns the pieces in layers [start, end] below face axis.
func (c *Cube) Slice(axis Direction, start, end int) Slice {
	s := Slice{Axis: axis, StartLayer: start, EndLayer: end, order: c.order}
	for _, a := range c.grid.Select(axis, start, end) {
		s.Pieces = append(s.Pieces, c.pieces[a])
	}
	return s
}

// Face returns the outer layer of face d.
func (c *Cube) Face(d Direction) Slice {
	return c.Slice(d, 1, 1)
}

// IsSolved reports whether every sticker shows the palette color of the
// face it points toward.
func (c *Cube) IsSolved() bool {
	for _, p := range c.pieces {
		for _, f := range p.faces {
			if !f.Introvert && f.Color != c.cfg.palette[f.Current] {
				return false
			}
		}
	}
	return true
}

// IsSolvedAnyOrientation reports whether each face shows a single color,
// regardless of which.
func (c *Cube) IsSolvedAnyOrientation() bool {
	for _, d := range AllDirections {
		if !c.Face(d).IsUniform(d) {
			return false
		}
	}
	return true
}

// Facelets returns the stickers of face d as rows seen from outside the
// cube, with d.Up() at the top.
func (c *Cube) Facelets(d Direction) [][]Color {
	n := c.order
	up := d.Up()
	right, _ := d.Right(up)
	nv, uv, rv := d.Normal(), up.Normal(), right.Normal()

	rows := make([][]Color, n)
	for r := 0; r < n; r++ {
		rows[r] = make([]Color, n)
		for col := 0; col < n; col++ {
			du, dr := n-1-2*r, 2*col-(n-1)
			p := Vector{
				X: nv.X*(n-1) + uv.X*du + rv.X*dr,
				Y: nv.Y*(n-1) + uv.Y*du + rv.Y*dr,
				Z: nv.Z*(n-1) + uv.Z*du + rv.Z*dr,
			}
			a := c.grid.Address(Coord{(p.X + n - 1) / 2, (p.Y + n - 1) / 2, (p.Z + n - 1) / 2})
			rows[r][col] = c.pieces[a].FaceAt(d).Color
		}
	}
	return rows
}

// String returns the cube as a flat net: U above L F R B, D below.
func (c *Cube) String() string {
	var sb strings.Builder
	indent := strings.Repeat(" ", 2*c.order)

	writeRow := func(row []Color) {
		for _, col := range row {
			sb.WriteString(col.String())
			sb.WriteByte(' ')
		}
	}

	for _, row := range c.Facelets(Up) {
		sb.WriteString(indent)
		writeRow(row)
		sb.WriteByte('\n')
	}

	side := [4][][]Color{c.Facelets(Left), c.Facelets(Front), c.Facelets(Right), c.Facelets(Back)}
	for r := 0; r < c.order; r++ {
		for _, face := range side {
			writeRow(face[r])
		}
		sb.WriteByte('\n')
	}

	for _, row := range c.Facelets(Down) {
		sb.WriteString(indent)
		writeRow(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Debug returns a one-line summary.
func (c *Cube) Debug() string {
	return fmt.Sprintf("order=%d solved=%v moves=%d pending=%d", c.order, c.IsSolved(), c.moveCounter, c.Pending())
}
