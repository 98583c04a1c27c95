package sqlgen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillorm/quill/query/lookup"
	"github.com/quillorm/quill/query/sqlgen"
)

type User struct{}

func (User) TableName() string { return "users" }

var (
	email     = lookup.NewStringField[User]("email")
	age       = lookup.NewField[User, int64]("age")
	balance   = lookup.NewNumberField[User, float64]("balance")
	active    = lookup.NewField[User, bool]("active")
	createdAt = lookup.NewTimeField[User]("created_at")
)

func mustCompile[M lookup.Model](t *testing.T, d sqlgen.Dialect, lk lookup.Lookup[M]) string {
	t.Helper()
	sql, err := sqlgen.Compile(d, lk)
	require.NoError(t, err)
	return sql
}

func TestCompileSQLite(t *testing.T) {
	d := sqlgen.SQLite{}

	tests := []struct {
		name string
		lk   lookup.Lookup[User]
		want string
	}{
		{"exact", email.Eq("a@b.c"), "email = 'a@b.c'"},
		{"ne", email.Ne("a@b.c"), "email != 'a@b.c'"},
		{"contains", email.Contains("example"), "email LIKE '%example%'"},
		{"icontains", email.IContains("Example"), "LOWER(email) LIKE '%example%'"},
		{"startswith", email.StartsWith("admin"), "email LIKE 'admin%'"},
		{"endswith", email.EndsWith(".org"), "email LIKE '%.org'"},
		{"iexact", email.IExact("A@B.C"), "LOWER(email) = 'a@b.c'"},
		{"regex", email.Regex(`^a`), "email REGEXP '^a'"},
		{"gt", age.Gt(21), "age > 21"},
		{"gte", age.Gte(18), "age >= 18"},
		{"lt", age.Lt(65), "age < 65"},
		{"lte", age.Lte(65), "age <= 65"},
		{"between", age.Between(18, 65), "age BETWEEN 18 AND 65"},
		{"in", age.In(1, 2, 3), "age IN (1, 2, 3)"},
		{"notin", age.NotIn(4, 5), "age NOT IN (4, 5)"},
		{"isnull", email.IsNull(), "email IS NULL"},
		{"isnotnull", email.IsNotNull(), "email IS NOT NULL"},
		{"float", balance.Gt(10.5), "balance > 10.5"},
		{"bool", active.Eq(true), "active = TRUE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustCompile(t, d, tt.lk))
		})
	}
}

func TestCompileEscapesSingleQuotes(t *testing.T) {
	lk := email.Eq("test'; DROP TABLE users; --")
	got := mustCompile(t, sqlgen.SQLite{}, lk)
	assert.Equal(t, "email = 'test''; DROP TABLE users; --'", got)
}

func TestCompileEscapesQuotesInPatterns(t *testing.T) {
	lk := email.Contains("o'brien")
	got := mustCompile(t, sqlgen.Postgres{}, lk)
	assert.Equal(t, "email LIKE '%o''brien%'", got)
}

func TestCompileLowerTransformWithContains(t *testing.T) {
	lk := email.Lower().Contains("example")
	got := mustCompile(t, sqlgen.SQLite{}, lk)
	assert.Equal(t, "LOWER(email) LIKE '%example%'", got)
}

func TestCompilePostgres(t *testing.T) {
	d := sqlgen.Postgres{}

	tests := []struct {
		name string
		lk   lookup.Lookup[User]
		want string
	}{
		{"iexact", email.IExact("A@B.C"), "LOWER(email) = 'a@b.c'"},
		{"icontains", email.IContains("Example"), "email ILIKE '%Example%'"},
		{"regex", email.Regex(`^a`), "email ~ '^a'"},
		{"iregex", email.IRegex(`^a`), "email ~* '^a'"},
		{"year", createdAt.Year().Eq(2024), "EXTRACT(YEAR FROM created_at) = 2024"},
		{"weekday", createdAt.Weekday().Eq(1), "EXTRACT(DOW FROM created_at) = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustCompile(t, d, tt.lk))
		})
	}
}

func TestCompileIExactKeepsLikeMetacharactersLiteral(t *testing.T) {
	// IExact is equality after lower-casing; % and _ in the value must
	// compare literally on every dialect, never as wildcards.
	coupon := lookup.NewStringField[User]("coupon")

	got := mustCompile(t, sqlgen.Postgres{}, coupon.IExact("50%_OFF"))
	assert.Equal(t, "LOWER(coupon) = '50%_off'", got)

	got = mustCompile(t, sqlgen.SQLite{}, coupon.IExact("50%_OFF"))
	assert.Equal(t, "LOWER(coupon) = '50%_off'", got)
}

func TestCompileMySQL(t *testing.T) {
	d := sqlgen.MySQL{}

	tests := []struct {
		name string
		lk   lookup.Lookup[User]
		want string
	}{
		{"icontains", email.IContains("Example"), "LOWER(email) LIKE '%example%'"},
		{"regex", email.Regex(`^a`), "email REGEXP '^a'"},
		{"day", createdAt.Day().Eq(15), "DAYOFMONTH(created_at) = 15"},
		{"weekday", createdAt.Weekday().Eq(0), "WEEKDAY(created_at) = 0"},
		{"year", createdAt.Year().Eq(2024), "YEAR(created_at) = 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustCompile(t, d, tt.lk))
		})
	}
}

func TestCompileSQLiteDateParts(t *testing.T) {
	d := sqlgen.SQLite{}

	tests := []struct {
		name string
		lk   lookup.Lookup[User]
		want string
	}{
		{"year", createdAt.Year().Eq(2024), "CAST(STRFTIME('%Y', created_at) AS INTEGER) = 2024"},
		{"quarter", createdAt.Quarter().Eq(2), "((CAST(STRFTIME('%m', created_at) AS INTEGER) + 2) / 3) = 2"},
		{"date", createdAt.Date().Year().Eq(2024), "CAST(STRFTIME('%Y', DATE(created_at)) AS INTEGER) = 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustCompile(t, d, tt.lk))
		})
	}
}

func TestCompileTransformOrder(t *testing.T) {
	// First transform in the path ends up innermost.
	lk := lookup.NewStringField[User]("name").Trim().Lower().Eq("x")
	got := mustCompile(t, sqlgen.SQLite{}, lk)
	assert.Equal(t, "LOWER(TRIM(name)) = 'x'", got)
}

func TestCompileNumberTransforms(t *testing.T) {
	lk := balance.Abs().Gt(100)
	got := mustCompile(t, sqlgen.SQLite{}, lk)
	assert.Equal(t, "ABS(balance) > 100", got)
}

func TestCompileEmptyIn(t *testing.T) {
	got := mustCompile(t, sqlgen.SQLite{}, age.In())
	assert.Equal(t, "age IN ()", got)
}

func TestCompileDefinedScalarTypes(t *testing.T) {
	type EmailAddr string
	type UserID int64

	definedEmail := lookup.NewField[User, EmailAddr]("email")
	got := mustCompile(t, sqlgen.SQLite{}, definedEmail.Eq("a@b.c"))
	assert.Equal(t, "email = 'a@b.c'", got)

	id := lookup.NewField[User, UserID]("user_id")
	assert.Equal(t, "user_id = 42", mustCompile(t, sqlgen.SQLite{}, id.Eq(42)))
	assert.Equal(t, "user_id IN (1, 2)", mustCompile(t, sqlgen.SQLite{}, id.In(1, 2)))
}

func TestCompileIsDeterministic(t *testing.T) {
	lk := email.Lower().IContains("Mixed'Case")
	first := mustCompile(t, sqlgen.SQLite{}, lk)
	second := mustCompile(t, sqlgen.SQLite{}, lk)
	assert.Equal(t, first, second)
}

func TestCompileRangeMismatch(t *testing.T) {
	// A between lookup assembled by hand without a Range value must fail
	// with a recoverable typed error, not panic.
	lk := lookup.NewLookup[User]([]string{"age"}, lookup.Between, lookup.Int(18))
	_, err := sqlgen.Compile(sqlgen.SQLite{}, lk)
	require.Error(t, err)

	var mismatch *sqlgen.ValueMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, lookup.Between, mismatch.Type)
	assert.Contains(t, err.Error(), "range")
}

func TestCompileScalarPositionRejectsRange(t *testing.T) {
	lk := lookup.NewLookup[User]([]string{"age"}, lookup.Exact, lookup.Range{Low: lookup.Int(1), High: lookup.Int(2)})
	_, err := sqlgen.Compile(sqlgen.SQLite{}, lk)
	var mismatch *sqlgen.ValueMismatchError
	require.True(t, errors.As(err, &mismatch))
}

func TestNewDialect(t *testing.T) {
	assert.Equal(t, "postgresql", sqlgen.New("postgresql").Name())
	assert.Equal(t, "postgresql", sqlgen.New("postgres").Name())
	assert.Equal(t, "mysql", sqlgen.New("mysql").Name())
	assert.Equal(t, "sqlite", sqlgen.New("sqlite").Name())
	assert.Equal(t, "sqlite", sqlgen.New("").Name())
}
