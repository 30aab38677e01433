// Package airlua exposes the air property functions to Lua scripts as the air module.
//
//	local air = require("air")
//	local h, err = air.h(1, 1000)
//	local rows, err = air.sweep{property = "z", pressures = {1}, t_from = 500, t_to = 5000, t_step = 500}
//	for _, row in ipairs(rows) do
//	    print(row.p, row.t, row.value, row.err)
//	end
package airlua

import (
	"context"
	"strings"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/air"
	"github.com/fpawel/eqair/internal/sweep"
	"github.com/fpawel/eqair/internal/units"
	"github.com/powerman/structlog"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
	luar "layeh.com/gopher-luar"
)

const ModuleName = "air"

type Options struct {
	Workers   int
	MaxPoints int
}

// NewState returns a Lua state with the air module preloaded and also set as
// the global air.
func NewState(opts Options) *lua.LState {
	L := lua.NewState()
	Open(L, opts)
	return L
}

// Open registers the air module in L.
func Open(L *lua.LState, opts Options) {
	m := &module{opts: opts}
	L.PreloadModule(ModuleName, m.loader)
	L.SetGlobal(ModuleName, m.table(L))
}

// RunFile executes the Lua script filename until it returns or ctx is done.
func RunFile(ctx context.Context, filename string, opts Options) error {
	L := NewState(opts)
	defer L.Close()
	L.SetContext(ctx)
	if err := L.DoFile(filename); err != nil {
		return merry.Prepend(err, filename)
	}
	return nil
}

// RunString executes the Lua chunk src.
func RunString(ctx context.Context, src string, opts Options) error {
	L := NewState(opts)
	defer L.Close()
	L.SetContext(ctx)
	return merry.Wrap(L.DoString(src))
}

type module struct {
	opts Options
}

func (m *module) loader(L *lua.LState) int {
	L.Push(m.table(L))
	return 1
}

func (m *module) table(L *lua.LState) *lua.LTable {
	t := L.NewTable()
	fs := map[string]lua.LGFunction{
		"eval":    m.eval,
		"sweep":   m.sweep,
		"atm":     m.atm,
		"kelvin":  m.kelvin,
		"info":    m.info,
		"decades": m.decades,
	}
	for _, x := range air.Properties {
		fs[x.String()] = m.property(x)
	}
	L.SetFuncs(t, fs)
	L.SetField(t, "properties", luar.New(L, propertyRows()))
	return t
}

func (m *module) property(x air.Property) lua.LGFunction {
	return func(L *lua.LState) int {
		p, t := float64(L.CheckNumber(1)), float64(L.CheckNumber(2))
		return pushResult(L, air.Eval(x, p, t))
	}
}

// air.eval(name, p, t)
func (m *module) eval(L *lua.LState) int {
	x, err := air.ParseProperty(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	p, t := float64(L.CheckNumber(2)), float64(L.CheckNumber(3))
	return pushResult(L, air.Eval(x, p, t))
}

type sweepArgs struct {
	Property  string
	Pressures []float64
	TFrom     float64
	TTo       float64
	TStep     float64
}

// air.sweep{property=, pressures={...}, t_from=, t_to=, t_step=}
func (m *module) sweep(L *lua.LState) int {
	var a sweepArgs
	if err := sweepMapper.Map(L.CheckTable(1), &a); err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	x, err := air.ParseProperty(a.Property)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	ctx := L.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	points, err := sweep.Run(ctx, sweep.Grid{
		Property:  x,
		Pressures: a.Pressures,
		TFrom:     a.TFrom,
		TTo:       a.TTo,
		TStep:     a.TStep,
	}, m.opts.Workers, m.opts.MaxPoints)
	if merry.Is(err, context.Canceled) || merry.Is(err, context.DeadlineExceeded) {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	if err != nil {
		L.RaiseError("%s", err)
	}

	rows := L.CreateTable(len(points), 0)
	for _, p := range points {
		row := L.CreateTable(0, 5)
		row.RawSetString("p", lua.LNumber(p.P))
		row.RawSetString("t", lua.LNumber(p.T))
		if p.Err == nil {
			row.RawSetString("value", lua.LNumber(p.Value))
		} else {
			row.RawSetString("err", lua.LString(p.Err.Error()))
			row.RawSetString("kind", lua.LString(p.Kind()))
		}
		rows.Append(row)
	}
	L.Push(rows)
	return 1
}

// air.atm(v, unit)
func (m *module) atm(L *lua.LState) int {
	v, err := units.Pressure(float64(L.CheckNumber(1)), L.OptString(2, ""))
	return pushResult(L, v, err)
}

// air.kelvin(v, unit)
func (m *module) kelvin(L *lua.LState) int {
	v, err := units.Temperature(float64(L.CheckNumber(1)), L.OptString(2, ""))
	return pushResult(L, v, err)
}

func (m *module) info(L *lua.LState) int {
	xs := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		xs = append(xs, L.Get(i).String())
	}
	log.Info(strings.Join(xs, " "))
	return 0
}

// Segment is a row of air.decades.
type Segment struct {
	Decade string    `luar:"decade"`
	P      float64   `luar:"p"`
	Lo     float64   `luar:"lo"`
	Hi     float64   `luar:"hi"`
	Arity  int       `luar:"arity"`
	Coefs  []float64 `luar:"coefs"`
}

// air.decades(name) returns the segments of the property table
func (m *module) decades(L *lua.LState) int {
	x, err := air.ParseProperty(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(luar.New(L, Segments(air.TableOf(x))))
	return 1
}

// Segments lists every segment of table t in decade order.
func Segments(t *air.Table) []Segment {
	var xs []Segment
	for _, d := range air.Decades {
		for _, s := range t.Segments(d) {
			xs = append(xs, Segment{
				Decade: d.String(),
				P:      d.Pressure(),
				Lo:     s.Lo,
				Hi:     s.Hi,
				Arity:  int(s.N),
				Coefs:  append([]float64(nil), s.C[:s.N]...),
			})
		}
	}
	return xs
}

type propertyRow struct {
	Name  string `luar:"name"`
	Title string `luar:"title"`
	Unit  string `luar:"nominal_unit"`
}

func propertyRows() []propertyRow {
	var xs []propertyRow
	for _, x := range air.Properties {
		xs = append(xs, propertyRow{x.String(), x.Title(), x.NominalUnit()})
	}
	return xs
}

func pushResult(L *lua.LState, v float64, err error) int {
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LNumber(v))
	return 1
}

var (
	log         = structlog.New(structlog.KeyUnit, "lua")
	sweepMapper = gluamapper.NewMapper(gluamapper.Option{ErrorUnused: true})
)
