package lookup

import "strings"

// JoinKind tags the four join flavors a TypedJoin can carry.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	FullJoin
)

func (k JoinKind) String() string {
	switch k {
	case InnerJoin:
		return "INNER"
	case LeftJoin:
		return "LEFT"
	case RightJoin:
		return "RIGHT"
	case FullJoin:
		return "FULL"
	}
	return "INNER"
}

// TypedJoin pairs a field of model L with a field of model R. The
// constructors require both sides to share the same value type T, so a
// join between, say, an integer key and a text column does not compile.
// Joins operate over raw column paths; transforms are not interpreted
// here.
type TypedJoin[L, R Model] struct {
	kind      JoinKind
	leftPath  []string
	rightPath []string
}

// On builds an inner join between two fields of identical value type.
func On[L, R Model, T Scalar](left Field[L, T], right Field[R, T]) TypedJoin[L, R] {
	return TypedJoin[L, R]{kind: InnerJoin, leftPath: left.Path(), rightPath: right.Path()}
}

// LeftOn builds a left outer join.
func LeftOn[L, R Model, T Scalar](left Field[L, T], right Field[R, T]) TypedJoin[L, R] {
	return TypedJoin[L, R]{kind: LeftJoin, leftPath: left.Path(), rightPath: right.Path()}
}

// RightOn builds a right outer join.
func RightOn[L, R Model, T Scalar](left Field[L, T], right Field[R, T]) TypedJoin[L, R] {
	return TypedJoin[L, R]{kind: RightJoin, leftPath: left.Path(), rightPath: right.Path()}
}

// FullOn builds a full outer join.
func FullOn[L, R Model, T Scalar](left Field[L, T], right Field[R, T]) TypedJoin[L, R] {
	return TypedJoin[L, R]{kind: FullJoin, leftPath: left.Path(), rightPath: right.Path()}
}

// Kind returns the join flavor.
func (j TypedJoin[L, R]) Kind() JoinKind { return j.kind }

// ToSQL renders the join as (right table name, join kind, condition). The
// condition equates the two qualified column paths, each joined with ".".
func (j TypedJoin[L, R]) ToSQL() (string, JoinKind, string) {
	var left L
	var right R
	cond := left.TableName() + "." + strings.Join(j.leftPath, ".") +
		" = " +
		right.TableName() + "." + strings.Join(j.rightPath, ".")
	return right.TableName(), j.kind, cond
}
