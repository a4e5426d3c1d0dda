// Package loaders loads series tables into PostgreSQL.
package loaders

import (
	"context"
	"fmt"

	"power-analytics/internal/models"
	"power-analytics/internal/schemas"
	"power-analytics/internal/shared/loggers"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=series_loader.go -destination=./mocks/series_loader_mock.go -package=mocks
type SeriesLoader interface {
	// Load recreates the schema's table, copies every row in and installs the
	// nonzero helper function.
	Load(ctx context.Context, schema *schemas.Schema, table *models.SeriesTable) error
}

// conn is the part of *pgx.Conn the loader needs.
type conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Close(ctx context.Context) error
}

type connectFunc func(ctx context.Context, databaseURL string) (conn, error)

type postgresLoader struct {
	databaseURL string
	connect     connectFunc
}

func NewPostgresLoader(databaseURL string) SeriesLoader {
	return &postgresLoader{
		databaseURL: databaseURL,
		connect: func(ctx context.Context, databaseURL string) (conn, error) {
			return pgx.Connect(ctx, databaseURL)
		},
	}
}

func (l *postgresLoader) Load(ctx context.Context, schema *schemas.Schema, table *models.SeriesTable) error {
	c, err := l.connect(ctx, l.databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer c.Close(context.WithoutCancel(ctx))

	for _, stmt := range []string{schema.DropTableSQL(), schema.CreateTableSQL()} {
		if _, err := c.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}

	copied, err := c.CopyFrom(ctx, pgx.Identifier{schema.Table}, schema.SQLNames(), pgx.CopyFromRows(Rows(table)))
	if err != nil {
		return fmt.Errorf("failed to copy rows into %s: %w", schema.Table, err)
	}

	if _, err := c.Exec(ctx, schema.NonzeroFunctionSQL()); err != nil {
		return fmt.Errorf("failed to create %s: %w", schema.NonzeroFunctionName(), err)
	}

	loggers.Ctx(ctx).Info().Int64(loggers.FieldRows, copied).Msgf("loaded table %s", schema.Table)
	return nil
}

// Rows lays out the table for COPY: the time first, then one value per region,
// nil where no sample was attributed.
func Rows(table *models.SeriesTable) [][]any {
	rows := make([][]any, table.Len())
	for r := range rows {
		row := make([]any, 0, len(table.Regions)+1)
		row = append(row, table.Times[r])
		for c := range table.Regions {
			cell := table.Cell(r, c)
			if !cell.Set {
				row = append(row, nil)
				continue
			}
			row = append(row, cell.Value)
		}
		rows[r] = row
	}
	return rows
}
