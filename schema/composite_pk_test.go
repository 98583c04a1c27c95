package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillorm/quill/schema"
)

func TestNewCompositePrimaryKey(t *testing.T) {
	pk, err := schema.NewCompositePrimaryKey([]string{"user_id", "order_id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"user_id", "order_id"}, pk.Fields())
	assert.Empty(t, pk.Name())
}

func TestEmptyFields(t *testing.T) {
	_, err := schema.NewCompositePrimaryKey(nil)
	assert.ErrorIs(t, err, schema.ErrEmptyFields)

	_, err = schema.NewCompositePrimaryKey([]string{})
	assert.ErrorIs(t, err, schema.ErrEmptyFields)
}

func TestDuplicateField(t *testing.T) {
	_, err := schema.NewCompositePrimaryKey([]string{"a", "b", "a"})
	require.Error(t, err)

	var dup *schema.DuplicateFieldError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "a", dup.Field)
}

func TestFieldsReturnsCopy(t *testing.T) {
	pk, err := schema.NewCompositePrimaryKey([]string{"a", "b"})
	require.NoError(t, err)

	fields := pk.Fields()
	fields[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, pk.Fields())
}

func TestToSQL(t *testing.T) {
	pk, err := schema.NewCompositePrimaryKey([]string{"user_id", "order_id"})
	require.NoError(t, err)
	assert.Equal(t, "PRIMARY KEY (user_id, order_id)", pk.ToSQL())

	named, err := schema.NewNamedCompositePrimaryKey([]string{"user_id", "order_id"}, "pk_user_order")
	require.NoError(t, err)
	assert.Equal(t, "CONSTRAINT pk_user_order PRIMARY KEY (user_id, order_id)", named.ToSQL())
}

func TestValidate(t *testing.T) {
	pk, err := schema.NewCompositePrimaryKey([]string{"user_id", "order_id"})
	require.NoError(t, err)

	require.NoError(t, pk.Validate(map[string]schema.PKValue{
		"user_id":  schema.PKInt(1),
		"order_id": schema.PKInt(2),
	}))

	err = pk.Validate(map[string]schema.PKValue{"order_id": schema.PKInt(2)})
	var missing *schema.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "user_id", missing.Field)
}

func TestToWhereClause(t *testing.T) {
	pk, err := schema.NewCompositePrimaryKey([]string{"tenant", "user_id"})
	require.NoError(t, err)

	clause, err := pk.ToWhereClause(map[string]schema.PKValue{
		"user_id": schema.PKInt(42),
		"tenant":  schema.PKString("acme"),
	})
	require.NoError(t, err)
	assert.Equal(t, "tenant = 'acme' AND user_id = 42", clause)
}

func TestToWhereClauseEscapesStrings(t *testing.T) {
	pk, err := schema.NewCompositePrimaryKey([]string{"slug"})
	require.NoError(t, err)

	clause, err := pk.ToWhereClause(map[string]schema.PKValue{
		"slug": schema.PKString("o'brien"),
	})
	require.NoError(t, err)
	assert.Equal(t, "slug = 'o''brien'", clause)
}

func TestToWhereClauseMissingValue(t *testing.T) {
	pk, err := schema.NewCompositePrimaryKey([]string{"a", "b"})
	require.NoError(t, err)

	_, err = pk.ToWhereClause(map[string]schema.PKValue{"a": schema.PKInt(1)})
	require.Error(t, err)
}

func TestPKValueLiterals(t *testing.T) {
	tests := []struct {
		name  string
		value schema.PKValue
		want  string
	}{
		{"string", schema.PKString("x"), "'x'"},
		{"string quote", schema.PKString("it's"), "'it''s'"},
		{"int", schema.PKInt(-7), "-7"},
		{"uint", schema.PKUint(7), "7"},
		{"bool true", schema.PKBool(true), "TRUE"},
		{"bool false", schema.PKBool(false), "FALSE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.SQLLiteral())
		})
	}
}

func TestNewPKValue(t *testing.T) {
	v, err := schema.NewPKValue("id", int64(3))
	require.NoError(t, err)
	assert.Equal(t, schema.PKInt(3), v)

	v, err = schema.NewPKValue("slug", "x")
	require.NoError(t, err)
	assert.Equal(t, schema.PKString("x"), v)

	_, err = schema.NewPKValue("blob", []byte{1})
	var invalid *schema.InvalidFieldTypeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "blob", invalid.Field)
}
