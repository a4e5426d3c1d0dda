package loaders

import (
	"context"
	"errors"
	"testing"

	"power-analytics/internal/models"
	"power-analytics/internal/schemas"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	execs   []string
	table   pgx.Identifier
	columns []string
	rows    [][]any
	closed  bool

	execErr error
	copyErr error
}

func (c *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.execs = append(c.execs, sql)
	return pgconn.CommandTag{}, c.execErr
}

func (c *fakeConn) CopyFrom(_ context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	if c.copyErr != nil {
		return 0, c.copyErr
	}
	c.table = tableName
	c.columns = columnNames
	for rowSrc.Next() {
		values, err := rowSrc.Values()
		if err != nil {
			return 0, err
		}
		c.rows = append(c.rows, values)
	}
	return int64(len(c.rows)), rowSrc.Err()
}

func (c *fakeConn) Close(context.Context) error {
	c.closed = true
	return nil
}

func newTestLoader(c *fakeConn, connectErr error) *postgresLoader {
	return &postgresLoader{
		databaseURL: "postgres://localhost/power",
		connect: func(_ context.Context, url string) (conn, error) {
			if connectErr != nil {
				return nil, connectErr
			}
			return c, nil
		},
	}
}

func sampleTable() (*schemas.Schema, *models.SeriesTable) {
	table := models.NewSeriesTable("time_ns", []int64{100, 200}, []string{"A_1", "Unknown Region"})
	table.Set(0, 0, 5.5)
	table.Set(1, 1, 7)
	schema := schemas.Build("variorum_series", "time_ns", table.Regions, "/csv_data/variorum/variorum_series.csv")
	return schema, table
}

func TestPostgresLoader_Load(t *testing.T) {
	t.Parallel()

	c := &fakeConn{}
	schema, table := sampleTable()

	require.NoError(t, newTestLoader(c, nil).Load(context.Background(), schema, table))

	require.Len(t, c.execs, 3)
	assert.Equal(t, schema.DropTableSQL(), c.execs[0])
	assert.Equal(t, schema.CreateTableSQL(), c.execs[1])
	assert.Equal(t, schema.NonzeroFunctionSQL(), c.execs[2])
	assert.Equal(t, pgx.Identifier{"variorum_series"}, c.table)
	assert.Equal(t, []string{"time_ns", "A_1", "Unknown_Region"}, c.columns)
	assert.Equal(t, [][]any{
		{int64(100), 5.5, nil},
		{int64(200), nil, 7.0},
	}, c.rows)
	assert.True(t, c.closed)
}

func TestPostgresLoader_Errors(t *testing.T) {
	t.Parallel()

	schema, table := sampleTable()

	t.Run("connect", func(t *testing.T) {
		t.Parallel()
		err := newTestLoader(nil, errors.New("connection refused")).Load(context.Background(), schema, table)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("exec", func(t *testing.T) {
		t.Parallel()
		c := &fakeConn{execErr: errors.New("permission denied")}
		err := newTestLoader(c, nil).Load(context.Background(), schema, table)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DROP TABLE")
		assert.True(t, c.closed)
	})

	t.Run("copy", func(t *testing.T) {
		t.Parallel()
		c := &fakeConn{copyErr: errors.New("bad row")}
		err := newTestLoader(c, nil).Load(context.Background(), schema, table)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "variorum_series")
		assert.Len(t, c.execs, 2, "the helper function is not created after a failed copy")
	})
}
