package airlua

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/fpawel/eqair/internal/air"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
)

func newState(t *testing.T) *lua.LState {
	L := NewState(Options{Workers: 2, MaxPoints: 1000})
	L.SetContext(context.Background())
	return L
}

func globalNumber(t *testing.T, L *lua.LState, name string) float64 {
	v, ok := L.GetGlobal(name).(lua.LNumber)
	require.True(t, ok, "%s: %v", name, L.GetGlobal(name))
	return float64(v)
}

func TestPropertyFunctions(t *testing.T) {
	L := newState(t)
	defer L.Close()

	require.NoError(t, L.DoString(`
h, h_err = air.h(1, 1000)
mu = air.eval("MU", 0.3, 15000)
z, z_err = require("air").z(1e-5, 1000)
`))
	h, err := air.Enthalpy(1, 1000)
	require.NoError(t, err)
	assert.Equal(t, h, globalNumber(t, L, "h"))
	assert.Equal(t, lua.LNil, L.GetGlobal("h_err"))

	mu, err := air.Viscosity(0.3, 15000)
	require.NoError(t, err)
	assert.Equal(t, mu, globalNumber(t, L, "mu"))

	assert.Equal(t, lua.LNil, L.GetGlobal("z"))
	assert.Contains(t, L.GetGlobal("z_err").String(), "pressure out of range")
}

func TestEvalUnknownProperty(t *testing.T) {
	L := newState(t)
	defer L.Close()
	err := L.DoString(`air.eval("rho", 1, 1000)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rho")
}

func TestUnits(t *testing.T) {
	L := newState(t)
	defer L.Close()
	require.NoError(t, L.DoString(`
p = air.atm(101325, "Pa")
t = air.kelvin(0, "C")
bad, bad_err = air.atm(1, "torr")
`))
	assert.InDelta(t, 1, globalNumber(t, L, "p"), 1e-12)
	assert.InDelta(t, 273.15, globalNumber(t, L, "t"), 1e-9)
	assert.Equal(t, lua.LNil, L.GetGlobal("bad"))
	assert.Contains(t, L.GetGlobal("bad_err").String(), "unknown unit")
}

func TestSweep(t *testing.T) {
	L := newState(t)
	defer L.Close()
	require.NoError(t, L.DoString(`
rows = air.sweep{property = "cp", pressures = {5e-4, 1}, t_from = 26000, t_to = 27000, t_step = 1000}
n = #rows
first_err, first_kind = rows[1].err, rows[1].kind
last_p, last_t, last_value = rows[4].p, rows[4].t, rows[4].value
`))
	assert.Equal(t, 4., globalNumber(t, L, "n"))
	assert.Contains(t, L.GetGlobal("first_err").String(), "interpolation gap")
	assert.Equal(t, air.KindInterpolationGap, L.GetGlobal("first_kind").String())

	v, err := air.SpecificHeat(1, 27000)
	require.NoError(t, err)
	assert.Equal(t, 1., globalNumber(t, L, "last_p"))
	assert.Equal(t, 27000., globalNumber(t, L, "last_t"))
	assert.Equal(t, v, globalNumber(t, L, "last_value"))
}

func TestSweepCancelled(t *testing.T) {
	L := NewState(Options{Workers: 2})
	defer L.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	L.SetContext(ctx)

	args := L.NewTable()
	args.RawSetString("property", lua.LString("h"))
	pressures := L.NewTable()
	pressures.Append(lua.LNumber(1e-2))
	pressures.Append(lua.LNumber(1))
	args.RawSetString("pressures", pressures)
	args.RawSetString("t_from", lua.LNumber(500))
	args.RawSetString("t_to", lua.LNumber(30000))
	args.RawSetString("t_step", lua.LNumber(1))

	fn := L.GetField(L.GetGlobal(ModuleName), "sweep")
	require.NoError(t, L.CallByParam(lua.P{Fn: fn, NRet: 2, Protect: true}, args))
	assert.Equal(t, lua.LNil, L.Get(-2))
	assert.Contains(t, L.Get(-1).String(), "sweep interrupted")
}

func TestSweepErrors(t *testing.T) {
	for _, src := range []string{
		`air.sweep{property = "cp", pressures = {1}, t_from = 500, t_to = 600, t_step = 1, step = 1}`,
		`air.sweep{property = "rho", pressures = {1}, t_from = 500, t_to = 600, t_step = 1}`,
		`air.sweep{property = "h", pressures = {1}, t_from = 600, t_to = 500, t_step = 1}`,
		`air.sweep{property = "h", pressures = {1, 10}, t_from = 500, t_to = 30000, t_step = 1}`,
	} {
		L := newState(t)
		assert.Error(t, L.DoString(src), src)
		L.Close()
	}
}

func TestDecadesAndProperties(t *testing.T) {
	L := newState(t)
	defer L.Close()
	require.NoError(t, L.DoString(`
xs = air.decades("mu")
n = #xs
decade, lo, hi, arity = xs[1].decade, xs[1].lo, xs[1].hi, xs[1].arity
coefs = #xs[1].coefs
bad, bad_err = air.decades("rho")
properties = #air.properties
unit = air.properties[1].nominal_unit
`))
	segs := Segments(air.TableOf(air.PropMu))
	assert.Equal(t, float64(len(segs)), globalNumber(t, L, "n"))
	assert.Equal(t, "1e-4", L.GetGlobal("decade").String())
	assert.Equal(t, segs[0].Lo, globalNumber(t, L, "lo"))
	assert.Equal(t, segs[0].Hi, globalNumber(t, L, "hi"))
	assert.Equal(t, 6., globalNumber(t, L, "arity"))
	assert.Equal(t, 6., globalNumber(t, L, "coefs"))
	assert.Equal(t, lua.LNil, L.GetGlobal("bad"))
	assert.Equal(t, float64(len(air.Properties)), globalNumber(t, L, "properties"))
	assert.Equal(t, air.PropH.NominalUnit(), L.GetGlobal("unit").String())
}

func TestSegments(t *testing.T) {
	for _, x := range air.Properties {
		table := air.TableOf(x)
		xs := Segments(table)
		require.Equal(t, table.Len(), len(xs), x)
		for _, s := range xs {
			assert.Len(t, s.Coefs, int(table.Arity))
			assert.True(t, s.Lo < s.Hi)
		}
	}
}

func TestRunFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "eqair-lua")
	require.NoError(t, err)
	defer func() {
		_ = os.RemoveAll(dir)
	}()
	filename := filepath.Join(dir, "main.lua")
	require.NoError(t, ioutil.WriteFile(filename, []byte(`
local air = require("air")
local v = assert(air.k(1, 2000))
air.info("k", v)
`), 0666))
	assert.NoError(t, RunFile(context.Background(), filename, Options{Workers: 1}))

	require.NoError(t, ioutil.WriteFile(filename, []byte(`assert(air.k(1, 31000))`), 0666))
	err = RunFile(context.Background(), filename, Options{Workers: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature out of range")
}

func TestRunStringCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, RunString(ctx, `while true do end`, Options{}))
}
