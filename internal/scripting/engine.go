// Package scripting runs Lua hooks that validate and solve cubes.
package scripting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/twistycube"
)

// ErrNoSolveFunction is returned when no script defines solve(state).
var ErrNoSolveFunction = errors.New("scripting: lua function solve not found")

const (
	validateFunc = "validate_twist"
	solveFunc    = "solve"
)

// Engine wraps a single gopher-lua VM.
// Single-goroutine access only, like the Cube it serves.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every .lua file under
// scriptsDir/validate and scriptsDir/solve. Missing directories are skipped.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	for _, sub := range []string{"validate", "solve"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			e.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	return e, nil
}

// NewEngineFromSource creates an engine from inline Lua source.
func NewEngineFromSource(src string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.vm.DoString(src); err != nil {
		e.Close()
		return nil, fmt.Errorf("load source: %w", err)
	}
	return e, nil
}

func newEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("inverse", vm.NewFunction(luaInverse))
	vm.SetGlobal("simplify", vm.NewFunction(luaSimplify))
	return &Engine{vm: vm, log: log}
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// HasValidator reports whether a script defines validate_twist.
func (e *Engine) HasValidator() bool {
	return e.vm.GetGlobal(validateFunc) != lua.LNil
}

// HasSolver reports whether a script defines solve.
func (e *Engine) HasSolver() bool {
	return e.vm.GetGlobal(solveFunc) != lua.LNil
}

// Validate calls validate_twist(twist). The function may return nil to
// drop the twist, a single twist table or a list of twist tables.
// Without the function, or on a script error, the twist passes unchanged.
func (e *Engine) Validate(t twistycube.Twist) []twistycube.Twist {
	fn := e.vm.GetGlobal(validateFunc)
	if fn == lua.LNil {
		return []twistycube.Twist{t}
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, e.twistTable(t)); err != nil {
		e.log.Error("lua validate_twist error", zap.Error(err))
		return []twistycube.Twist{t}
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	out, err := twistsFromLua(result, t)
	if err != nil {
		e.log.Error("lua validate_twist result", zap.Error(err))
		return []twistycube.Twist{t}
	}
	return out
}

// Solve calls solve(state) and parses the returned notation.
func (e *Engine) Solve(c *twistycube.Cube) (twistycube.Algorithm, error) {
	fn := e.vm.GetGlobal(solveFunc)
	if fn == lua.LNil {
		return twistycube.Algorithm{}, ErrNoSolveFunction
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, e.stateTable(c)); err != nil {
		return twistycube.Algorithm{}, fmt.Errorf("lua solve: %w", err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	if result == lua.LNil {
		return twistycube.Algorithm{}, nil
	}
	alg, err := algorithmFromLua(result)
	if err != nil {
		return twistycube.Algorithm{}, fmt.Errorf("lua solve: %w", err)
	}
	e.log.Debug("lua solve", zap.String("twists", alg.String()))
	return alg, nil
}

func (e *Engine) twistTable(t twistycube.Twist) *lua.LTable {
	return twistTable(e.vm, t)
}

func twistTable(L *lua.LState, t twistycube.Twist) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("base", lua.LString(string(t.Base)))
	tbl.RawSetString("amount", lua.LNumber(t.Amount))
	tbl.RawSetString("start_layer", lua.LNumber(t.StartLayer))
	tbl.RawSetString("end_layer", lua.LNumber(t.EndLayer))
	tbl.RawSetString("notation", lua.LString(t.String()))
	return tbl
}

func twistList(L *lua.LState, alg twistycube.Algorithm) *lua.LTable {
	tbl := L.NewTable()
	for i, t := range alg.Twists() {
		tbl.RawSetInt(i+1, twistTable(L, t))
	}
	return tbl
}

// defaultTwist supplies the layers for twist tables that omit them.
var defaultTwist = twistycube.Twist{StartLayer: 1, EndLayer: 1}

// algorithmFromLua accepts notation or a list of twist tables.
func algorithmFromLua(v lua.LValue) (twistycube.Algorithm, error) {
	switch v := v.(type) {
	case lua.LString:
		return twistycube.ParseAlgorithm(string(v))
	case *lua.LTable:
		twists, err := twistsFromLua(v, defaultTwist)
		if err != nil {
			return twistycube.Algorithm{}, err
		}
		return twistycube.NewAlgorithm(twists...), nil
	default:
		return twistycube.Algorithm{}, fmt.Errorf("got %s, want string or table", v.Type())
	}
}

// stateTable packs the cube for solve(state):
//
//	state.order, state.moves, state.solved
//	state.history = {{base="R", amount=1, start_layer=2, end_layer=2, notation="R[2..2]"}, ...}
//	state.notation = "R[2..2] U" (history as text)
//	state.faces.U = {"WWW", "WWW", "WWW"} (rows, top first)
func (e *Engine) stateTable(c *twistycube.Cube) *lua.LTable {
	t := e.vm.NewTable()
	t.RawSetString("order", lua.LNumber(c.Order()))
	t.RawSetString("moves", lua.LNumber(c.MoveCounter()))
	t.RawSetString("solved", lua.LBool(c.IsSolved()))

	hist := c.History()
	twists := make([]twistycube.Twist, len(hist))
	for i, tw := range hist {
		twists[i] = *tw
	}
	alg := twistycube.NewAlgorithm(twists...)
	t.RawSetString("history", twistList(e.vm, alg))
	t.RawSetString("notation", lua.LString(alg.String()))

	faces := e.vm.NewTable()
	for _, d := range twistycube.AllDirections {
		rows := e.vm.NewTable()
		for i, row := range c.Facelets(d) {
			var sb strings.Builder
			for _, col := range row {
				sb.WriteString(col.String())
			}
			rows.RawSetInt(i+1, lua.LString(sb.String()))
		}
		faces.RawSetString(d.String(), rows)
	}
	t.RawSetString("faces", faces)
	return t
}

func twistsFromLua(v lua.LValue, orig twistycube.Twist) ([]twistycube.Twist, error) {
	if v == lua.LNil {
		return nil, nil
	}
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("got %s, want table or nil", v.Type())
	}
	if tbl.RawGetString("base") != lua.LNil {
		t, err := twistFromTable(tbl, orig)
		if err != nil {
			return nil, err
		}
		return []twistycube.Twist{t}, nil
	}

	out := make([]twistycube.Twist, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		item, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("item %d is not a table", i)
		}
		t, err := twistFromTable(item, orig)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// twistFromTable reads a twist table. Missing fields default to the
// submitted twist's layers and a single clockwise quarter turn.
func twistFromTable(tbl *lua.LTable, orig twistycube.Twist) (twistycube.Twist, error) {
	base := lua.LVAsString(tbl.RawGetString("base"))
	if len(base) != 1 {
		return twistycube.Twist{}, fmt.Errorf("%w: base %q", twistycube.ErrInvalidTwist, base)
	}
	t := twistycube.Twist{
		Base:       base[0],
		Amount:     intField(tbl, "amount", 1),
		StartLayer: intField(tbl, "start_layer", orig.StartLayer),
		EndLayer:   intField(tbl, "end_layer", orig.EndLayer),
	}
	if err := t.Validate(); err != nil {
		return twistycube.Twist{}, err
	}
	return t, nil
}

func intField(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return def
	}
	return int(lua.LVAsNumber(v))
}

// luaInverse implements inverse(twists). Notation in gives notation out;
// a list of twist tables gives a list back.
func luaInverse(L *lua.LState) int {
	return luaTransform(L, twistycube.Algorithm.Inverse)
}

// luaSimplify implements simplify(twists) with the same argument rules
// as inverse.
func luaSimplify(L *lua.LState) int {
	return luaTransform(L, twistycube.Algorithm.Simplify)
}

func luaTransform(L *lua.LState, fn func(twistycube.Algorithm) twistycube.Algorithm) int {
	arg := L.CheckAny(1)
	alg, err := algorithmFromLua(arg)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	out := fn(alg)
	if _, ok := arg.(*lua.LTable); ok {
		L.Push(twistList(L, out))
	} else {
		L.Push(lua.LString(out.String()))
	}
	return 1
}
