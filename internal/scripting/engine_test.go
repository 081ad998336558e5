package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/SeamusWaldron/twistycube"
)

const scriptsDir = "../../scripts"

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(scriptsDir, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestNewEngine_LoadsScripts(t *testing.T) {
	e := newTestEngine(t)
	assert.True(t, e.HasValidator())
	assert.True(t, e.HasSolver())
}

func TestNewEngine_MissingDirsAreSkipped(t *testing.T) {
	e, err := NewEngine(t.TempDir(), nil)
	require.NoError(t, err)
	defer e.Close()
	assert.False(t, e.HasValidator())
	assert.False(t, e.HasSolver())
	assert.Equal(t, []twistycube.Twist{twistycube.R}, e.Validate(twistycube.R))
}

func TestNewEngine_BadScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "solve"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solve", "broken.lua"), []byte("function solve("), 0o644))

	_, err := NewEngine(dir, nil)
	assert.Error(t, err)
}

func TestValidate_ExpandsSlices(t *testing.T) {
	e := newTestEngine(t)

	got := e.Validate(twistycube.NewTwist('M', 2))
	assert.Equal(t, []twistycube.Twist{
		twistycube.NewTwist('R', 2),
		twistycube.NewTwist('L', -2),
		twistycube.NewTwist('X', -2),
	}, got)

	assert.Equal(t, []twistycube.Twist{twistycube.U}, e.Validate(twistycube.U))
}

func TestValidate_ExpansionMatchesSliceTwist(t *testing.T) {
	e := newTestEngine(t)
	for _, order := range []int{3, 5} {
		plain := twistycube.MustNew(order)
		hooked := twistycube.MustNew(order, twistycube.WithValidator(e.Validate))

		for _, c := range []*twistycube.Cube{plain, hooked} {
			_, err := c.TwistNotation("M E' S2 R M'")
			require.NoError(t, err)
			c.Settle()
		}
		assert.Equal(t, plain.Snapshot(), hooked.Snapshot(), "order %d", order)
		assert.Greater(t, len(hooked.History()), len(plain.History()))
	}
}

func TestValidate_DropAndErrors(t *testing.T) {
	e, err := NewEngineFromSource(`
function validate_twist(t)
  if t.base == "B" then return nil end
  if t.base == "D" then error("no D allowed") end
  if t.base == "F" then return 42 end
  return t
end`, nil)
	require.NoError(t, err)
	defer e.Close()

	assert.Empty(t, e.Validate(twistycube.B))
	assert.Equal(t, []twistycube.Twist{twistycube.D}, e.Validate(twistycube.D), "errors pass the twist through")
	assert.Equal(t, []twistycube.Twist{twistycube.F}, e.Validate(twistycube.F), "bad results pass the twist through")
	assert.Equal(t, []twistycube.Twist{twistycube.RPrime}, e.Validate(twistycube.RPrime))
}

func TestSolve_ReversesHistory(t *testing.T) {
	e := newTestEngine(t)
	c := twistycube.MustNew(3, twistycube.WithSolver(e))
	_, err := c.TwistNotation("R U F' U U")
	require.NoError(t, err)
	c.Settle()
	require.False(t, c.IsSolved())

	alg, err := c.Solve()
	require.NoError(t, err)
	assert.Equal(t, "U2 F U' R'", alg.Notation())
	c.Settle()
	assert.True(t, c.IsSolved())
}

func TestSolve_SolvedCubeNeedsNothing(t *testing.T) {
	e := newTestEngine(t)
	alg, err := e.Solve(twistycube.MustNew(3))
	require.NoError(t, err)
	assert.True(t, alg.IsEmpty())
}

func TestSolve_Errors(t *testing.T) {
	e, err := NewEngineFromSource(`x = 1`, nil)
	require.NoError(t, err)
	_, err = e.Solve(twistycube.MustNew(2))
	assert.ErrorIs(t, err, ErrNoSolveFunction)
	e.Close()

	e, err = NewEngineFromSource(`function solve(state) return "R2'" end`, nil)
	require.NoError(t, err)
	_, err = e.Solve(twistycube.MustNew(2))
	assert.ErrorIs(t, err, twistycube.ErrInvalidNotation)
	e.Close()

	e, err = NewEngineFromSource(`function solve(state) return state.order end`, nil)
	require.NoError(t, err)
	_, err = e.Solve(twistycube.MustNew(2))
	assert.Error(t, err)
	e.Close()
}

func TestSolve_StateTable(t *testing.T) {
	e, err := NewEngineFromSource(`
function solve(state)
  if state.order ~= 2 then error("order") end
  if state.faces.U[1] ~= "WW" then error("faces") end
  if state.faces.F[2] ~= "GG" then error("faces") end
  if not state.solved then error("solved") end
  return "R U"
end`, nil)
	require.NoError(t, err)
	defer e.Close()

	alg, err := e.Solve(twistycube.MustNew(2))
	require.NoError(t, err)
	assert.Equal(t, "R U", alg.Notation())
}

func TestSolve_InnerLayerHistory(t *testing.T) {
	e := newTestEngine(t)
	c := twistycube.MustNew(4, twistycube.WithSolver(e))
	c.Twist(twistycube.NewLayerTwist(twistycube.Right, 1, 2, 2))
	c.Twist(twistycube.U)
	c.Settle()
	require.False(t, c.IsSolved())

	alg, err := c.Solve()
	require.NoError(t, err)
	assert.Equal(t, "U' R[2..2]'", alg.String())
	c.Settle()
	assert.True(t, c.IsSolved())
}

func TestSolve_HistoryTables(t *testing.T) {
	e, err := NewEngineFromSource(`
function solve(state)
  local h = state.history
  if #h ~= 2 then error("history") end
  if h[1].start_layer ~= 2 or h[1].notation ~= "R[2..2]" then error("layers") end
  if state.notation ~= "R[2..2] U" then error("notation") end
  if inverse("R U") ~= "U' R'" then error("inverse notation") end
  if simplify("R R") ~= "R2" then error("simplify notation") end
  local inv = inverse(h)
  if inv[1].base ~= "U" or inv[2].amount ~= -1 or inv[2].end_layer ~= 2 then
    error("inverse table")
  end
  return simplify(inv)
end`, nil)
	require.NoError(t, err)
	defer e.Close()

	c := twistycube.MustNew(4)
	c.Twist(twistycube.NewLayerTwist(twistycube.Right, 1, 2, 2))
	c.Twist(twistycube.U)
	c.Settle()

	alg, err := e.Solve(c)
	require.NoError(t, err)
	assert.True(t, alg.Equal(twistycube.NewAlgorithm(
		twistycube.UPrime,
		twistycube.NewLayerTwist(twistycube.Right, -1, 2, 2),
	)))
}

func TestSolve_OversizedNotation(t *testing.T) {
	e, err := NewEngineFromSource(`function solve(state) return inverse("(R)99999999999") end`, nil)
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Solve(twistycube.MustNew(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid move notation")

	e2, err := NewEngineFromSource(`function solve(state) return "(R U)60000" end`, nil)
	require.NoError(t, err)
	defer e2.Close()

	_, err = e2.Solve(twistycube.MustNew(3))
	assert.ErrorIs(t, err, twistycube.ErrInvalidNotation)
}
