package twistycube

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func apply(t *testing.T, c *Cube, notation string) {
	t.Helper()
	_, err := c.TwistNotation(notation)
	require.NoError(t, err)
	c.Settle()
}

func TestNew_RejectsInvalidOrder(t *testing.T) {
	for _, order := range []int{0, -1, -3} {
		c, err := New(order)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	}
}

func TestNew_RejectsBadPalette(t *testing.T) {
	p := DefaultPalette
	p[Back] = Green
	_, err := New(3, WithPalette(p))
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestNewCubeIsSolved(t *testing.T) {
	for order := 1; order <= 6; order++ {
		c := MustNew(order)
		assert.True(t, c.IsSolved(), "order %d", order)
		assert.True(t, c.IsSolvedAnyOrientation(), "order %d", order)
		assert.Len(t, c.Pieces(), order*order*order)
	}
}

func TestNewCube_PieceTypes(t *testing.T) {
	tests := []struct {
		order int
		want  map[PieceType]int
	}{
		{1, map[PieceType]int{PieceUnitary: 1}},
		{2, map[PieceType]int{PieceCorner: 8}},
		{3, map[PieceType]int{PieceCorner: 8, PieceEdge: 12, PieceCenter: 6, PieceInner: 1}},
		{4, map[PieceType]int{PieceCorner: 8, PieceEdge: 24, PieceCenter: 24, PieceInner: 8}},
	}
	for _, tt := range tests {
		groups := GroupByType(MustNew(tt.order).Pieces())
		got := map[PieceType]int{}
		for k, v := range groups {
			got[k] = len(v)
		}
		assert.Equal(t, tt.want, got, "order %d", tt.order)
	}
}

func TestNewCube_IntrovertFacesColorless(t *testing.T) {
	c := MustNew(3)
	inner := c.PieceAt(c.Grid().Address(Coord{1, 1, 1}))
	for _, f := range inner.Faces() {
		assert.True(t, f.Introvert)
		assert.Equal(t, Colorless, f.Color)
	}
	corner := c.PieceAt(c.Grid().Address(Coord{0, 0, 0}))
	assert.True(t, corner.HasColors(Yellow, Orange, Blue))
	assert.False(t, corner.HasColors(Yellow, Red))
}

func TestSingleTwistBreaksSolved(t *testing.T) {
	for order := 1; order <= 4; order++ {
		for _, base := range []byte("FURDLB") {
			for _, amount := range []int{1, 2, -1} {
				c := MustNew(order)
				settled(t, c, NewTwist(base, amount))
				assert.False(t, c.IsSolved(), "order %d %c%d", order, base, amount)
			}
		}
	}
}

func TestRR_ReturnsToSolved(t *testing.T) {
	c := MustNew(3)
	apply(t, c, "R R R R")
	assert.True(t, c.IsSolved(), c.String())
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	c := MustNew(3)
	apply(t, c, "R2 R2")
	assert.True(t, c.IsSolved(), c.String())
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	for _, order := range []int{2, 3} {
		c := MustNew(order)
		c.Apply(SexyMove.Repeat(6))
		c.Settle()
		assert.True(t, c.IsSolved(), c.String())
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	c := MustNew(3)
	c.Apply(TPerm)
	c.Settle()
	assert.False(t, c.IsSolved())
	c.Apply(TPerm)
	c.Settle()
	assert.True(t, c.IsSolved(), c.String())
}

func TestScrambleAndReverse(t *testing.T) {
	for order := 2; order <= 6; order++ {
		scramble := MustParseAlgorithm("R U2 F' (L D)3 B' M E2 S'").
			Then(NewLayerTwist(Up, 1, 2, order-1), NewTwist('r', -1), NewLayerTwist(Back, 2, order, order))
		c := MustNew(order)
		c.Apply(scramble)
		c.Settle()
		c.Apply(scramble.Inverse())
		c.Settle()
		assert.True(t, c.IsSolved(), "order %d\n%s", order, c)
	}
}

func TestReorientationKeepsSolvedAnyOrientation(t *testing.T) {
	c := MustNew(3)
	apply(t, c, "x y2 z'")
	assert.False(t, c.IsSolved())
	assert.True(t, c.IsSolvedAnyOrientation())
	assert.Equal(t, 0, c.MoveCounter())
}

func TestMoveCounter(t *testing.T) {
	c := MustNew(3)
	apply(t, c, "R U R4 x M F2")
	assert.Equal(t, 4, c.MoveCounter())
}

func TestUndoRedo(t *testing.T) {
	c := MustNew(3)
	ref := MustNew(3)
	apply(t, ref, "R")
	afterR := ref.Snapshot()
	apply(t, ref, "U")
	afterRU := ref.Snapshot()

	apply(t, c, "R U")
	require.Equal(t, 2, c.MoveCounter())

	require.True(t, c.Undo())
	assert.Equal(t, 1, c.Pending())
	res, ok := c.Advance()
	require.True(t, ok)
	assert.True(t, res.Undo)
	assert.Equal(t, UPrime, res.Twist)
	assert.Equal(t, afterR, c.Snapshot())
	assert.Equal(t, 1, c.MoveCounter())

	require.True(t, c.Redo())
	c.Settle()
	assert.Equal(t, afterRU, c.Snapshot())
	assert.Equal(t, 2, c.MoveCounter())

	assert.False(t, c.Redo(), "nothing left to redo")
}

func TestUndoRedo_QueuedBeforeSettle(t *testing.T) {
	c := MustNew(3)
	ref := MustNew(3)
	apply(t, ref, "R")

	apply(t, c, "R U")
	require.True(t, c.Undo())
	require.True(t, c.Undo())
	require.True(t, c.Redo())
	assert.Equal(t, 3, c.Pending())

	c.Settle()
	assert.Equal(t, ref.Snapshot(), c.Snapshot())
	assert.Equal(t, 1, c.MoveCounter())
	require.True(t, c.Redo())
	c.Settle()
	assert.Equal(t, 2, c.MoveCounter())
}

func TestUndo_AllTheWayBack(t *testing.T) {
	c := MustNew(4)
	apply(t, c, "R U F' r2 M")
	for c.Undo() {
		c.Settle()
	}
	assert.True(t, c.IsSolved())
	assert.Equal(t, 0, c.MoveCounter())
	assert.Empty(t, c.History())
}

func TestTwistAfterUndo_AbandonsRedo(t *testing.T) {
	c := MustNew(3)
	apply(t, c, "R U")
	require.True(t, c.Undo())
	c.Settle()

	apply(t, c, "F")
	assert.False(t, c.Redo())
	hist := c.History()
	require.Len(t, hist, 2)
	assert.Equal(t, R, *hist[0])
	assert.Equal(t, F, *hist[1])
	assert.Equal(t, 2, c.MoveCounter())
}

func TestUndo_EmptyHistory(t *testing.T) {
	c := MustNew(3)
	assert.False(t, c.Undo())
	assert.False(t, c.Redo())
	_, ok := c.Advance()
	assert.False(t, ok)
}

func TestTwistNotation_FailureDoesNotQueue(t *testing.T) {
	c := MustNew(3)
	_, err := c.TwistNotation("R U2'")
	assert.ErrorIs(t, err, ErrInvalidNotation)
	assert.Equal(t, 0, c.Pending())
	assert.True(t, c.IsSolved())
}

func TestTwist_RejectsUnknownBase(t *testing.T) {
	c := MustNew(3)
	_, err := c.Twist(Twist{Base: 'Q', Amount: 1, StartLayer: 1, EndLayer: 1})
	assert.ErrorIs(t, err, ErrInvalidTwist)
	assert.Equal(t, 0, c.Pending())
}

func TestAdvance_OneTwistPerCall(t *testing.T) {
	c := MustNew(3)
	queued, err := c.TwistNotation("R U F")
	require.NoError(t, err)
	require.Len(t, queued, 3)

	for i, want := range queued {
		res, ok := c.Advance()
		require.True(t, ok)
		assert.Same(t, want, res.Source)
		assert.Equal(t, len(queued)-i-1, c.Pending())
	}
	_, ok := c.Advance()
	assert.False(t, ok)
}

func TestAdvance_BusyDuringObserver(t *testing.T) {
	c := MustNew(3)
	var busy, nested bool
	c.OnTwist(func(TwistResult) {
		busy = c.IsBusy()
		_, nested = c.Advance()
	})
	apply(t, c, "R U")
	assert.True(t, busy)
	assert.False(t, nested)
	assert.False(t, c.IsBusy())
	assert.Equal(t, 2, c.MoveCounter())
}

func TestShuffle(t *testing.T) {
	c := MustNew(3, WithSeed(7))
	shuffled := 0
	c.OnShuffled(func() { shuffled++ })

	alg := c.Shuffle(12)
	require.Equal(t, 12, alg.Len())
	assert.True(t, c.IsShuffling())
	assert.Equal(t, 12, c.Settle())

	assert.Equal(t, 1, shuffled)
	assert.False(t, c.IsShuffling())
	assert.Equal(t, 0, c.MoveCounter())
	assert.Empty(t, c.History())
	assert.False(t, c.Undo(), "shuffle twists cannot be undone")
}

func TestShuffle_Deterministic(t *testing.T) {
	a := MustNew(5, WithSeed(99)).Shuffle(30)
	b := MustNew(5, WithSeed(99)).Shuffle(30)
	assert.True(t, a.Equal(b))
}

func TestShuffle_StringReplays(t *testing.T) {
	c := MustNew(4, WithSeed(11))
	alg := c.Shuffle(40)
	c.Settle()

	inner := 0
	for _, tw := range alg.Twists() {
		if tw.StartLayer > 1 {
			inner++
		}
	}
	require.Positive(t, inner)

	replay := MustNew(4)
	apply(t, replay, alg.String())
	assert.Equal(t, c.Snapshot(), replay.Snapshot())

	replay.Apply(MustParseAlgorithm(alg.String()).Inverse())
	replay.Settle()
	assert.True(t, replay.IsSolved())
}

func TestShuffle_ThenUserTwistsUndoable(t *testing.T) {
	c := MustNew(3, WithSeed(1))
	c.Shuffle(5)
	c.Settle()
	scrambled := c.Snapshot()

	apply(t, c, "R U")
	require.True(t, c.Undo())
	require.True(t, c.Undo())
	c.Settle()
	assert.Equal(t, scrambled, c.Snapshot())
	assert.False(t, c.Undo())
}

func TestValidatorHook(t *testing.T) {
	c := MustNew(3, WithValidator(func(tw Twist) []Twist {
		if tw.Base == 'X' {
			return nil
		}
		return []Twist{tw, tw}
	}))
	queued, err := c.TwistNotation("R x")
	require.NoError(t, err)
	assert.Len(t, queued, 2)
	c.Settle()
	assert.Equal(t, 2, c.MoveCounter())
}

type scriptedSolver struct {
	alg Algorithm
	err error
}

func (s scriptedSolver) Solve(*Cube) (Algorithm, error) {
	return s.alg, s.err
}

func TestSolve(t *testing.T) {
	c := MustNew(3, WithSolver(scriptedSolver{alg: MustParseAlgorithm("U' R'")}))
	apply(t, c, "R U")
	alg, err := c.Solve()
	require.NoError(t, err)
	assert.Equal(t, 2, alg.Len())
	c.Settle()
	assert.True(t, c.IsSolved())
}

func TestSolve_Errors(t *testing.T) {
	_, err := MustNew(3).Solve()
	assert.ErrorIs(t, err, ErrNoSolver)

	boom := errors.New("boom")
	_, err = MustNew(3, WithSolver(scriptedSolver{err: boom})).Solve()
	assert.ErrorIs(t, err, boom)
}

func TestReset(t *testing.T) {
	c := MustNew(3)
	apply(t, c, "R U F")
	c.TwistNotation("L")
	c.Reset()
	assert.True(t, c.IsSolved())
	assert.Equal(t, 0, c.MoveCounter())
	assert.Equal(t, 0, c.Pending())
	assert.False(t, c.Undo())
}

func TestReset_ClearsPendingShuffle(t *testing.T) {
	c := MustNew(3, WithSeed(1))
	c.Shuffle(5)
	require.True(t, c.IsShuffling())
	c.Reset()
	assert.False(t, c.IsShuffling())
	assert.Equal(t, 0, c.Settle())
}

func TestPiece_HasColorFollowsTwist(t *testing.T) {
	c := MustNew(3)
	apply(t, c, "R")

	// R carries the down-front-right corner up to up-front-right.
	p := c.PieceAt(26)
	assert.Equal(t, 20, p.ID())
	assert.Equal(t, 26, p.Address())

	d, ok := p.HasColor(Green)
	require.True(t, ok)
	assert.Equal(t, Up, d)
	d, ok = p.HasColor(Yellow)
	require.True(t, ok)
	assert.Equal(t, Front, d)
	_, ok = p.HasColor(Blue)
	assert.False(t, ok)
	assert.True(t, p.HasColors(Green, Yellow, Red))
}

func TestPiece_HasColorIgnoresIntrovertFaces(t *testing.T) {
	c := MustNew(3)
	corner := c.PieceAt(26)
	require.Equal(t, PieceCorner, corner.Type())
	_, ok := corner.HasColor(Colorless)
	assert.False(t, ok)

	inner := c.PieceAt(13)
	require.Equal(t, PieceInner, inner.Type())
	_, ok = inner.HasColor(Colorless)
	assert.False(t, ok)
	assert.False(t, inner.HasColors(Colorless))
}

func TestSnapshot(t *testing.T) {
	c := MustNew(3)
	snap := c.Snapshot()
	require.Len(t, snap, 27)
	for i, s := range snap {
		assert.Equal(t, i, s.ID)
		assert.Equal(t, i, s.Address)
	}

	apply(t, c, "R")
	assert.NotEqual(t, snap, c.Snapshot())
}

func TestFacelets_AfterU(t *testing.T) {
	c := MustNew(3)
	apply(t, c, "U")
	front := c.Facelets(Front)
	assert.Equal(t, []Color{Red, Red, Red}, front[0])
	assert.Equal(t, []Color{Green, Green, Green}, front[1])
	assert.Equal(t, []Color{White, White, White}, c.Facelets(Up)[1])
}

func TestClone_Independent(t *testing.T) {
	c := MustNew(3)
	apply(t, c, "R")
	clone := c.Clone()
	assert.Equal(t, c.Snapshot(), clone.Snapshot())
	assert.Equal(t, 1, clone.MoveCounter())
	assert.NotEqual(t, c.ID(), clone.ID())

	apply(t, clone, "R'")
	assert.True(t, clone.IsSolved())
	assert.False(t, c.IsSolved())
}

func TestSlice(t *testing.T) {
	c := MustNew(3)
	s := c.Slice(Right, 1, 1)
	assert.Equal(t, 9, s.Len())
	d, ok := s.Face()
	require.True(t, ok)
	assert.Equal(t, Right, d)
	assert.True(t, s.IsSolved())

	inner := c.Slice(Right, 2, 2)
	_, ok = inner.Face()
	assert.False(t, ok)
	assert.False(t, inner.IsSolved())

	far := c.Slice(Right, 3, 3)
	d, ok = far.Face()
	require.True(t, ok)
	assert.Equal(t, Left, d)

	groups := s.ByType()
	assert.Len(t, groups[PieceCorner], 4)
	assert.Len(t, groups[PieceEdge], 4)
	assert.Len(t, groups[PieceCenter], 1)

	assert.Empty(t, c.Slice(Right, 0, 2).Pieces)
}

func TestString_SolvedNet(t *testing.T) {
	lines := strings.Split(MustNew(3).String(), "\n")
	require.GreaterOrEqual(t, len(lines), 9)
	assert.Equal(t, "      W W W ", lines[0])
	assert.Equal(t, "O O O G G G R R R B B B ", lines[3])
	assert.Equal(t, "      Y Y Y ", lines[8])
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := MustNew(2, WithLogger(zap.New(core)))
	apply(t, c, "R")

	entries := logs.FilterMessage("twist applied").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "R", fields["twist"])
	assert.Equal(t, c.ID().String(), fields["cube"])
}

func TestPieceFilters(t *testing.T) {
	c := MustNew(3)
	pieces := c.Pieces()

	assert.Len(t, FilterByType(pieces, PieceCenter), 6)
	assert.Len(t, FilterByType(pieces, PieceInner), 1)
	assert.Len(t, FilterByColors(pieces, White, Red), 3)

	corner := FilterByColors(pieces, White, Red, Green)
	require.Len(t, corner, 1)
	assert.Equal(t, PieceCorner, corner[0].Type())

	up := c.Face(Up).Pieces
	assert.Len(t, FaceColors(up, Up), 9)
	assert.True(t, IsFaceUniform(up, Up))

	apply(t, c, "R")
	assert.False(t, IsFaceUniform(c.Face(Up).Pieces, Up))
}
