package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillorm/quill/query/builder"
	"github.com/quillorm/quill/query/lookup"
	"github.com/quillorm/quill/query/sqlgen"
)

type User struct{}

func (User) TableName() string { return "users" }

type Order struct{}

func (Order) TableName() string { return "orders" }

func TestBuildBareSelect(t *testing.T) {
	got := builder.NewSelect("users").Build()
	assert.Equal(t, "SELECT * FROM users", got)
}

func TestBuildFullSelect(t *testing.T) {
	got := builder.NewSelect("users").
		Columns("id", "email").
		Where("age >= 18").
		Where("email IS NOT NULL").
		OrderBy("email", "desc").
		Limit(10).
		Offset(5).
		Build()
	assert.Equal(t, "SELECT id, email FROM users WHERE age >= 18 AND email IS NOT NULL ORDER BY email DESC LIMIT 10 OFFSET 5", got)
}

func TestBuildWithCompiledCondition(t *testing.T) {
	email := lookup.NewStringField[User]("email")
	cond, err := sqlgen.Compile(sqlgen.SQLite{}, email.Contains("example"))
	require.NoError(t, err)

	got := builder.NewSelect("users").Where(cond).Build()
	assert.Equal(t, "SELECT * FROM users WHERE email LIKE '%example%'", got)
}

func TestBuildWithTypedJoin(t *testing.T) {
	userID := lookup.NewField[User, int64]("id")
	orderUserID := lookup.NewField[Order, int64]("user_id")

	b := builder.NewSelect("users")
	builder.JoinTyped(b, lookup.LeftOn(userID, orderUserID))
	got := b.Build()
	assert.Equal(t, "SELECT * FROM users LEFT JOIN orders ON users.id = orders.user_id", got)
}

func TestEmptyWhereFragmentIgnored(t *testing.T) {
	got := builder.NewSelect("users").Where("").Build()
	assert.Equal(t, "SELECT * FROM users", got)
}
