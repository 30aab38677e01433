package data

import (
	"context"
	"testing"

	"github.com/ansel1/merry"
	"github.com/fpawel/eqair/internal/air"
	"github.com/fpawel/eqair/internal/sweep"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *sqlx.DB {
	db, err := Open(":memory:")
	require.NoError(t, err)
	return db
}

func TestSaveAndGetSweep(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	defer func() {
		assert.NoError(t, db.Close())
	}()

	g := sweep.Grid{
		Property:  air.PropCp,
		Pressures: []float64{5e-4, 1},
		TFrom:     25000,
		TTo:       31000,
		TStep:     1000,
	}
	points, err := sweep.Run(ctx, g, 2, 0)
	require.NoError(t, err)

	id, err := SaveSweep(ctx, db, g, points, "test")
	require.NoError(t, err)
	require.Len(t, id, 36)

	x, err := GetSweep(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, "cp", x.Property)
	assert.Equal(t, "test", x.Note)
	assert.Equal(t, len(points), x.Points)
	assert.Equal(t, sweep.Summarize(points).Failed(), x.Failed)
	assert.False(t, x.CreatedAt.IsZero())

	xs, err := GetSweepPoints(ctx, db, id)
	require.NoError(t, err)
	require.Len(t, xs, len(points))
	for i, p := range xs {
		assert.Equal(t, i, p.Seq)
		assert.Equal(t, points[i].P, p.P)
		assert.Equal(t, points[i].T, p.T)
		if points[i].Err != nil {
			assert.False(t, p.Value.Valid)
			assert.Equal(t, points[i].Kind(), p.Kind.String)
			assert.Equal(t, points[i].Err.Error(), p.Err.String)
		} else {
			assert.True(t, p.Value.Valid)
			assert.Equal(t, points[i].Value, p.Value.Float64)
			assert.False(t, p.Err.Valid)
		}
	}

	g2, err := x.Grid(xs)
	require.NoError(t, err)
	assert.Equal(t, g, g2)
}

func TestListAndDeleteSweeps(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	defer func() {
		assert.NoError(t, db.Close())
	}()

	xs, err := ListSweeps(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, xs)

	g := sweep.Grid{Property: air.PropZ, Pressures: []float64{1}, TFrom: 500, TTo: 1000, TStep: 100}
	points, err := sweep.Run(ctx, g, 1, 0)
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := SaveSweep(ctx, db, g, points, "")
		require.NoError(t, err)
		ids = append(ids, id)
	}
	xs, err = ListSweeps(ctx, db)
	require.NoError(t, err)
	require.Len(t, xs, 3)

	require.NoError(t, DeleteSweep(ctx, db, ids[1]))
	_, err = GetSweep(ctx, db, ids[1])
	assert.True(t, merry.Is(err, ErrSweepNotFound))
	assert.True(t, merry.Is(DeleteSweep(ctx, db, ids[1]), ErrSweepNotFound))

	ps, err := GetSweepPoints(ctx, db, ids[1])
	require.NoError(t, err)
	assert.Empty(t, ps)

	xs, err = ListSweeps(ctx, db)
	require.NoError(t, err)
	assert.Len(t, xs, 2)
}

func TestSaveSweepRollback(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	defer func() {
		assert.NoError(t, db.Close())
	}()
	g := sweep.Grid{Property: air.PropH, Pressures: []float64{1}, TFrom: 500, TTo: 600, TStep: 0}
	_, err := SaveSweep(ctx, db, g, nil, "")
	require.Error(t, err)

	xs, err := ListSweeps(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, xs)
}
