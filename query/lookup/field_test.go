package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillorm/quill/query/lookup"
)

type User struct{}

func (User) TableName() string { return "users" }

type Order struct{}

func (Order) TableName() string { return "orders" }

func TestFieldPath(t *testing.T) {
	f := lookup.NewField[User, int64]("id")
	assert.Equal(t, []string{"id"}, f.Path())

	hop := lookup.NewStringField[User]("profile", "bio")
	assert.Equal(t, []string{"profile", "bio"}, hop.Path())
}

func TestFieldPathIsCopied(t *testing.T) {
	segs := []string{"email"}
	f := lookup.NewField[User, string](segs...)
	segs[0] = "mutated"
	assert.Equal(t, []string{"email"}, f.Path())

	got := f.Path()
	got[0] = "mutated"
	assert.Equal(t, []string{"email"}, f.Path())
}

func TestEmptyPathPanics(t *testing.T) {
	assert.Panics(t, func() { lookup.NewField[User, string]() })
}

func TestTransformsChainInOrder(t *testing.T) {
	f := lookup.NewStringField[User]("name").Lower().Trim()
	assert.Equal(t, []string{"name", "lower", "trim"}, f.Path())
}

func TestTransformsDoNotMutateReceiver(t *testing.T) {
	base := lookup.NewStringField[User]("name")
	_ = base.Lower()
	_ = base.Upper()
	assert.Equal(t, []string{"name"}, base.Path())
}

func TestLengthYieldsIntegerField(t *testing.T) {
	f := lookup.NewStringField[User]("name").Length()
	lk := f.Gt(5)
	assert.Equal(t, []string{"name", "length"}, lk.Path())
	assert.Equal(t, lookup.Gt, lk.Type())
	assert.Equal(t, lookup.Int(5), lk.Value())
}

func TestTimeFieldParts(t *testing.T) {
	created := lookup.NewTimeField[User]("created_at")

	tests := []struct {
		name string
		path []string
	}{
		{"year", created.Year().Path()},
		{"quarter", created.Quarter().Path()},
		{"weekday", created.Weekday().Path()},
	}
	for _, tt := range tests {
		assert.Equal(t, []string{"created_at", tt.name}, tt.path)
	}
}

func TestNumberTransforms(t *testing.T) {
	f := lookup.NewNumberField[Order, float64]("total").Abs().Round()
	assert.Equal(t, []string{"total", "abs", "round"}, f.Path())
}

func TestLookupConstruction(t *testing.T) {
	email := lookup.NewStringField[User]("email")
	age := lookup.NewField[User, int64]("age")

	tests := []struct {
		name  string
		lk    lookup.Lookup[User]
		typ   lookup.Type
		value lookup.Value
	}{
		{"eq", email.Eq("a@b.c"), lookup.Exact, lookup.String("a@b.c")},
		{"ne", email.Ne("a@b.c"), lookup.Ne, lookup.String("a@b.c")},
		{"iexact", email.IExact("A@B.C"), lookup.IExact, lookup.String("A@B.C")},
		{"contains", email.Contains("b"), lookup.Contains, lookup.String("b")},
		{"regex", email.Regex(`^a.*`), lookup.Regex, lookup.String(`^a.*`)},
		{"gte", age.Gte(18), lookup.Gte, lookup.Int(18)},
		{"between", age.Between(18, 65), lookup.Between, lookup.Range{Low: lookup.Int(18), High: lookup.Int(65)}},
		{"in", age.In(1, 2, 3), lookup.In, lookup.Array{lookup.Int(1), lookup.Int(2), lookup.Int(3)}},
		{"isnull", email.IsNull(), lookup.IsNull, lookup.Null{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.lk.Type())
			assert.Equal(t, tt.value, tt.lk.Value())
		})
	}
}

func TestDefinedScalarTypes(t *testing.T) {
	type EmailAddr string
	type UserID int64

	email := lookup.NewField[User, EmailAddr]("email")
	assert.Equal(t, lookup.String("a@b.c"), email.Eq(EmailAddr("a@b.c")).Value())

	id := lookup.NewField[User, UserID]("id")
	assert.Equal(t, lookup.Int(42), id.Eq(42).Value())
	assert.Equal(t, lookup.Array{lookup.Int(1), lookup.Int(2)}, id.In(1, 2).Value())
	assert.Equal(t,
		lookup.Range{Low: lookup.Int(1), High: lookup.Int(9)},
		id.Between(1, 9).Value())
}

func TestTypeFamilies(t *testing.T) {
	require.True(t, lookup.IContains.CaseInsensitive())
	require.False(t, lookup.Contains.CaseInsensitive())
	require.True(t, lookup.IContains.Pattern())
	require.False(t, lookup.IRegex.Pattern())
	require.True(t, lookup.IsNull.Nullity())
	require.False(t, lookup.Exact.Nullity())
}

func TestIsTransform(t *testing.T) {
	assert.True(t, lookup.IsTransform("lower"))
	assert.True(t, lookup.IsTransform("quarter"))
	assert.False(t, lookup.IsTransform("email"))
}
