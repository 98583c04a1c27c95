package schema

// Column describes one table column.
type Column struct {
	Name     string
	Type     string // logical type: Int, BigInt, Float, String, Bool, DateTime
	Nullable bool
	Default  string // raw SQL default expression, "" for none
}

// Table describes a model's table: its columns and, when the model
// declares one, its composite primary key. Single-column keys are
// represented the same way with one field.
type Table struct {
	Name       string
	Columns    []Column
	PrimaryKey *CompositePrimaryKey
}

// Column returns the named column, if present.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}
