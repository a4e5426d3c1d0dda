// Package schemas renders the relational schema matching a series table.
package schemas

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	TypeTime  = "BIGINT"
	TypeValue = "DOUBLE PRECISION"
)

// Column maps a series column onto a SQL-safe name.
type Column struct {
	Name    string
	SQLName string
	Type    string
}

type Schema struct {
	Table      string
	TimeColumn Column
	Columns    []Column // region columns, in series order
	CopySource string   // path psql reads the series CSV from
}

// Build derives the schema for a series with the given time column and region columns.
func Build(table, timeColumn string, regionColumns []string, copySource string) *Schema {
	used := map[string]int{}
	safe := func(name string) string {
		base := SafeName(name)
		used[base]++
		if used[base] == 1 {
			return base
		}
		for {
			candidate := base + "_" + strconv.Itoa(used[base])
			if used[candidate] == 0 {
				used[candidate] = 1
				return candidate
			}
			used[base]++
		}
	}

	s := &Schema{
		Table:      SafeName(table),
		TimeColumn: Column{Name: timeColumn, SQLName: safe(timeColumn), Type: TypeTime},
		CopySource: copySource,
	}
	for _, name := range regionColumns {
		s.Columns = append(s.Columns, Column{Name: name, SQLName: safe(name), Type: TypeValue})
	}
	return s
}

// SafeName replaces every character other than ASCII letters, digits and '_' with '_'.
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// SQLNames returns the time column followed by the region columns.
func (s *Schema) SQLNames() []string {
	names := []string{s.TimeColumn.SQLName}
	for _, c := range s.Columns {
		names = append(names, c.SQLName)
	}
	return names
}

func (s *Schema) DropTableSQL() string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", s.Table)
}

func (s *Schema) CreateTableSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", s.Table)
	fmt.Fprintf(&b, "    %s %s", s.TimeColumn.SQLName, s.TimeColumn.Type)
	for _, c := range s.Columns {
		fmt.Fprintf(&b, ",\n    %s %s", quote(c.SQLName), c.Type)
	}
	b.WriteString("\n);")
	return b.String()
}

// CopyCommand is a psql meta-command; it cannot run through a driver.
func (s *Schema) CopyCommand() string {
	return fmt.Sprintf(`\COPY %s FROM '%s' WITH (FORMAT csv, HEADER true);`, s.Table, strings.ReplaceAll(s.CopySource, "'", "''"))
}

// NonzeroQuerySQL selects rows where any region column holds a non-zero reading.
func (s *Schema) NonzeroQuerySQL() string {
	if len(s.Columns) == 0 {
		return fmt.Sprintf("SELECT * FROM %s;", s.Table)
	}
	conditions := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		conditions[i] = quote(c.SQLName) + " != 0"
	}
	return fmt.Sprintf("SELECT * FROM %s\nWHERE %s;", s.Table, strings.Join(conditions, "\n   OR "))
}

func (s *Schema) NonzeroFunctionName() string {
	return "select_" + s.Table + "_nonzero"
}

// NonzeroFunctionSQL builds the same filter at call time from information_schema,
// so it keeps working after the table is regenerated with other regions.
func (s *Schema) NonzeroFunctionSQL() string {
	return fmt.Sprintf(`CREATE OR REPLACE FUNCTION %[1]s()
RETURNS SETOF %[2]s AS $$
DECLARE
    condition TEXT;
BEGIN
    SELECT string_agg(format('%%I != 0', column_name), ' OR ')
    INTO condition
    FROM information_schema.columns
    WHERE table_name = '%[2]s'
      AND column_name != '%[3]s';

    IF condition IS NULL THEN
        RETURN QUERY EXECUTE 'SELECT * FROM %[2]s';
    ELSE
        RETURN QUERY EXECUTE 'SELECT * FROM %[2]s WHERE ' || condition;
    END IF;
END;
$$ LANGUAGE plpgsql;`, s.NonzeroFunctionName(), s.Table, s.TimeColumn.SQLName)
}

// Render produces the .sql artifact.
func (s *Schema) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- %s: %d region columns\n", s.Table, len(s.Columns))
	b.WriteString(s.DropTableSQL())
	b.WriteString("\n\n")
	b.WriteString(s.CreateTableSQL())
	b.WriteString("\n\n")
	b.WriteString(s.CopyCommand())
	b.WriteString("\n\n-- rows with at least one non-zero region reading\n")
	b.WriteString(s.NonzeroQuerySQL())
	b.WriteString("\n\n")
	b.WriteString(s.NonzeroFunctionSQL())
	b.WriteString("\n")
	return b.String()
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
