package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillorm/quill/query/lookup"
)

func TestTypedJoinToSQL(t *testing.T) {
	userID := lookup.NewField[User, int64]("id")
	orderUserID := lookup.NewField[Order, int64]("user_id")

	table, kind, cond := lookup.On(userID, orderUserID).ToSQL()
	assert.Equal(t, "orders", table)
	assert.Equal(t, lookup.InnerJoin, kind)
	assert.Equal(t, "users.id = orders.user_id", cond)
}

func TestJoinKinds(t *testing.T) {
	userID := lookup.NewField[User, int64]("id")
	orderUserID := lookup.NewField[Order, int64]("user_id")

	tests := []struct {
		name string
		join lookup.TypedJoin[User, Order]
		kind lookup.JoinKind
		sql  string
	}{
		{"inner", lookup.On(userID, orderUserID), lookup.InnerJoin, "INNER"},
		{"left", lookup.LeftOn(userID, orderUserID), lookup.LeftJoin, "LEFT"},
		{"right", lookup.RightOn(userID, orderUserID), lookup.RightJoin, "RIGHT"},
		{"full", lookup.FullOn(userID, orderUserID), lookup.FullJoin, "FULL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.join.Kind())
			assert.Equal(t, tt.sql, tt.join.Kind().String())
		})
	}
}

func TestJoinConditionUsesFullFieldPath(t *testing.T) {
	// Dotted condition segments follow the fields' declared paths.
	left := lookup.NewField[User, string]("profile", "slug")
	right := lookup.NewField[Order, string]("slug")

	_, _, cond := lookup.LeftOn(left, right).ToSQL()
	assert.Equal(t, "users.profile.slug = orders.slug", cond)
}
