package schema

import (
	"fmt"
	"strings"
)

// columnTypes maps logical column types to provider-specific SQL types.
var columnTypes = map[string]map[string]string{
	"sqlite": {
		"Int":      "INTEGER",
		"BigInt":   "INTEGER",
		"Float":    "REAL",
		"String":   "TEXT",
		"Bool":     "INTEGER",
		"DateTime": "TEXT",
	},
	"postgresql": {
		"Int":      "INTEGER",
		"BigInt":   "BIGINT",
		"Float":    "DOUBLE PRECISION",
		"String":   "TEXT",
		"Bool":     "BOOLEAN",
		"DateTime": "TIMESTAMP",
	},
	"mysql": {
		"Int":      "INT",
		"BigInt":   "BIGINT",
		"Float":    "DOUBLE",
		"String":   "VARCHAR(191)",
		"Bool":     "TINYINT(1)",
		"DateTime": "DATETIME",
	},
}

// ColumnTypeSQL resolves a logical column type for a provider, falling
// back to the logical name for types the map does not know.
func ColumnTypeSQL(provider, logical string) string {
	types, ok := columnTypes[provider]
	if !ok {
		types = columnTypes["sqlite"]
	}
	if sql, ok := types[logical]; ok {
		return sql
	}
	return logical
}

// CreateTableSQL renders the CREATE TABLE statement for a table, with the
// composite-key constraint emitted through CompositePrimaryKey.ToSQL.
func CreateTableSQL(provider string, t *Table) string {
	lines := make([]string, 0, len(t.Columns)+1)
	for _, col := range t.Columns {
		line := fmt.Sprintf("    %s %s", col.Name, ColumnTypeSQL(provider, col.Type))
		if !col.Nullable {
			line += " NOT NULL"
		}
		if col.Default != "" {
			line += " DEFAULT " + col.Default
		}
		lines = append(lines, line)
	}
	if t.PrimaryKey != nil {
		lines = append(lines, "    "+t.PrimaryKey.ToSQL())
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", t.Name, strings.Join(lines, ",\n"))
}
