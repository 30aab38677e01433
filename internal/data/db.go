// Package data stores evaluated sweeps in SQLite.
package data

import (
	"context"
	"database/sql"
	"time"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/air"
	"github.com/fpawel/eqair/internal/pkg"
	"github.com/fpawel/eqair/internal/sweep"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrSweepNotFound = merry.New("sweep not found")

func Open(filename string) (*sqlx.DB, error) {
	db, err := pkg.OpenSqliteDBx(filename)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(SQLCreate); err != nil {
		_ = db.Close()
		return nil, merry.Append(err, filename)
	}
	return db, nil
}

type Sweep struct {
	SweepID   string    `db:"sweep_id" json:"sweep_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Property  string    `db:"property" json:"property"`
	TFrom     float64   `db:"t_from" json:"t_from"`
	TTo       float64   `db:"t_to" json:"t_to"`
	TStep     float64   `db:"t_step" json:"t_step"`
	Note      string    `db:"note" json:"note"`
	Points    int       `db:"points" json:"points"`
	Failed    int       `db:"failed" json:"failed"`
}

type Point struct {
	SweepID string          `db:"sweep_id"`
	Seq     int             `db:"seq"`
	P       float64         `db:"p"`
	T       float64         `db:"t"`
	Value   sql.NullFloat64 `db:"value"`
	Kind    sql.NullString  `db:"kind"`
	Err     sql.NullString  `db:"err"`
}

// Grid restores the sweep grid. Pressures are taken from the points.
func (x Sweep) Grid(points []Point) (sweep.Grid, error) {
	prop, err := air.ParseProperty(x.Property)
	if err != nil {
		return sweep.Grid{}, err
	}
	g := sweep.Grid{
		Property: prop,
		TFrom:    x.TFrom,
		TTo:      x.TTo,
		TStep:    x.TStep,
	}
	for i, p := range points {
		if i == 0 || p.P != points[i-1].P {
			g.Pressures = append(g.Pressures, p.P)
		}
	}
	return g, nil
}

// SaveSweep writes the grid and its points in one transaction and returns the new sweep id.
func SaveSweep(ctx context.Context, db *sqlx.DB, g sweep.Grid, points []sweep.Point, note string) (string, error) {
	id := uuid.New().String()
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return "", merry.Wrap(err)
	}
	if err := saveSweep(ctx, tx, id, g, points, note); err != nil {
		_ = tx.Rollback()
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", merry.Wrap(err)
	}
	return id, nil
}

func saveSweep(ctx context.Context, tx *sqlx.Tx, id string, g sweep.Grid, points []sweep.Point, note string) error {
	r, err := tx.ExecContext(ctx,
		`INSERT INTO sweep(sweep_id, property, t_from, t_to, t_step, note) VALUES (?, ?, ?, ?, ?, ?)`,
		id, g.Property.String(), g.TFrom, g.TTo, g.TStep, note)
	if err != nil {
		return merry.Wrap(err)
	}
	if err := pkg.SqlRowsAffected(r, 1); err != nil {
		return err
	}
	stmt, err := tx.PreparexContext(ctx,
		`INSERT INTO sweep_point(sweep_id, seq, p, t, value, kind, err) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return merry.Wrap(err)
	}
	defer log.ErrIfFail(stmt.Close)
	for i, x := range points {
		var (
			value     sql.NullFloat64
			kind, msg sql.NullString
		)
		if x.Err == nil {
			value = sql.NullFloat64{Float64: x.Value, Valid: true}
		} else {
			kind = sql.NullString{String: x.Kind(), Valid: true}
			msg = sql.NullString{String: x.Err.Error(), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, id, i, x.P, x.T, value, kind, msg); err != nil {
			return merry.Appendf(err, "point %d: p=%v t=%v", i, x.P, x.T)
		}
	}
	log.Debug("sweep saved", "sweep_id", id, "points", len(points))
	return nil
}

func ListSweeps(ctx context.Context, db *sqlx.DB) (xs []Sweep, err error) {
	err = db.SelectContext(ctx, &xs, `SELECT * FROM sweep_info ORDER BY created_at DESC, sweep_id`)
	return
}

func GetSweep(ctx context.Context, db *sqlx.DB, sweepID string) (x Sweep, err error) {
	err = db.GetContext(ctx, &x, `SELECT * FROM sweep_info WHERE sweep_id = ?`, sweepID)
	if err == sql.ErrNoRows {
		err = ErrSweepNotFound.Here().Append(sweepID)
	}
	return
}

func GetSweepPoints(ctx context.Context, db *sqlx.DB, sweepID string) (xs []Point, err error) {
	err = db.SelectContext(ctx, &xs, `SELECT * FROM sweep_point WHERE sweep_id = ? ORDER BY seq`, sweepID)
	return
}

func DeleteSweep(ctx context.Context, db *sqlx.DB, sweepID string) error {
	r, err := db.ExecContext(ctx, `DELETE FROM sweep WHERE sweep_id = ?`, sweepID)
	if err != nil {
		return merry.Wrap(err)
	}
	n, err := r.RowsAffected()
	if err != nil {
		return merry.Wrap(err)
	}
	if n == 0 {
		return ErrSweepNotFound.Here().Append(sweepID)
	}
	return nil
}
