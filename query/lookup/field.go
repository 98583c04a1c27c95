package lookup

import "time"

// Model is implemented by the phantom tag types that identify an owning
// table. The tag carries no data at runtime; it exists so that two fields
// of different models cannot be mixed up at compile time, and so joins can
// recover the table names on both sides.
type Model interface {
	TableName() string
}

// Scalar is the set of SQL-level value types a field expression can
// evaluate to.
type Scalar interface {
	~string | ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool | time.Time
}

// Number is the subset of Scalar with numeric transforms (abs, ceil, ...).
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Field is a typed path identifying a column, possibly through relation
// hops, possibly wrapped in transforms. M tags the owning model, T the SQL
// value type of the rendered expression; neither occupies any runtime
// space. The path is never empty and never mutated after construction.
type Field[M Model, T Scalar] struct {
	path []string
}

// NewField constructs a field from an ordered, non-empty list of path
// segments. Segment names are not validated here; the compiler treats any
// segment that is not a recognized transform as a literal column or
// relation name.
func NewField[M Model, T Scalar](segments ...string) Field[M, T] {
	if len(segments) == 0 {
		panic("lookup: field path must not be empty")
	}
	path := make([]string, len(segments))
	copy(path, segments)
	return Field[M, T]{path: path}
}

// Path returns a copy of the field's path segments.
func (f Field[M, T]) Path() []string {
	path := make([]string, len(f.path))
	copy(path, f.path)
	return path
}

// with returns a new field with one segment appended.
func (f Field[M, T]) with(segment string) []string {
	path := make([]string, len(f.path), len(f.path)+1)
	copy(path, f.path)
	return append(path, segment)
}

func (f Field[M, T]) lookup(t Type, v Value) Lookup[M] {
	return Lookup[M]{path: f.Path(), typ: t, val: v}
}

// Eq builds an equality condition.
func (f Field[M, T]) Eq(v T) Lookup[M] { return f.lookup(Exact, valueOf(v)) }

// Ne builds an inequality condition.
func (f Field[M, T]) Ne(v T) Lookup[M] { return f.lookup(Ne, valueOf(v)) }

// Gt builds a greater-than condition.
func (f Field[M, T]) Gt(v T) Lookup[M] { return f.lookup(Gt, valueOf(v)) }

// Gte builds a greater-or-equal condition.
func (f Field[M, T]) Gte(v T) Lookup[M] { return f.lookup(Gte, valueOf(v)) }

// Lt builds a less-than condition.
func (f Field[M, T]) Lt(v T) Lookup[M] { return f.lookup(Lt, valueOf(v)) }

// Lte builds a less-or-equal condition.
func (f Field[M, T]) Lte(v T) Lookup[M] { return f.lookup(Lte, valueOf(v)) }

// Between builds a BETWEEN condition over an inclusive range.
func (f Field[M, T]) Between(lo, hi T) Lookup[M] {
	return f.lookup(Between, Range{Low: valueOf(lo), High: valueOf(hi)})
}

// In builds a set-membership condition.
func (f Field[M, T]) In(vs ...T) Lookup[M] {
	arr := make(Array, len(vs))
	for i, v := range vs {
		arr[i] = valueOf(v)
	}
	return f.lookup(In, arr)
}

// NotIn builds a negated set-membership condition.
func (f Field[M, T]) NotIn(vs ...T) Lookup[M] {
	arr := make(Array, len(vs))
	for i, v := range vs {
		arr[i] = valueOf(v)
	}
	return f.lookup(NotIn, arr)
}

// IsNull builds a null test. No value is carried.
func (f Field[M, T]) IsNull() Lookup[M] { return f.lookup(IsNull, Null{}) }

// IsNotNull builds a not-null test. No value is carried.
func (f Field[M, T]) IsNotNull() Lookup[M] { return f.lookup(IsNotNull, Null{}) }

// StringField is a Field over string columns. It adds the pattern and
// case-insensitive lookups and the string transforms.
type StringField[M Model] struct {
	Field[M, string]
}

// NewStringField constructs a string field from path segments.
func NewStringField[M Model](segments ...string) StringField[M] {
	return StringField[M]{NewField[M, string](segments...)}
}

// Lower appends the lower transform. Transforms chain; the first appended
// transform is innermost when rendered.
func (f StringField[M]) Lower() StringField[M] {
	return StringField[M]{Field[M, string]{path: f.with(TransformLower)}}
}

// Upper appends the upper transform.
func (f StringField[M]) Upper() StringField[M] {
	return StringField[M]{Field[M, string]{path: f.with(TransformUpper)}}
}

// Trim appends the trim transform.
func (f StringField[M]) Trim() StringField[M] {
	return StringField[M]{Field[M, string]{path: f.with(TransformTrim)}}
}

// Length appends the length transform, yielding an integer-typed field.
func (f StringField[M]) Length() Field[M, int64] {
	return Field[M, int64]{path: f.with(TransformLength)}
}

// IExact builds an equality condition with both operands lower-cased.
func (f StringField[M]) IExact(v string) Lookup[M] { return f.lookup(IExact, String(v)) }

// Contains builds a substring condition anchored on neither side.
func (f StringField[M]) Contains(v string) Lookup[M] { return f.lookup(Contains, String(v)) }

// IContains is Contains with both operands lower-cased.
func (f StringField[M]) IContains(v string) Lookup[M] { return f.lookup(IContains, String(v)) }

// StartsWith builds a prefix-match condition.
func (f StringField[M]) StartsWith(v string) Lookup[M] { return f.lookup(StartsWith, String(v)) }

// IStartsWith is StartsWith with both operands lower-cased.
func (f StringField[M]) IStartsWith(v string) Lookup[M] { return f.lookup(IStartsWith, String(v)) }

// EndsWith builds a suffix-match condition.
func (f StringField[M]) EndsWith(v string) Lookup[M] { return f.lookup(EndsWith, String(v)) }

// IEndsWith is EndsWith with both operands lower-cased.
func (f StringField[M]) IEndsWith(v string) Lookup[M] { return f.lookup(IEndsWith, String(v)) }

// Regex builds a raw regex-match condition. The pattern is passed through
// without wildcard wrapping.
func (f StringField[M]) Regex(pattern string) Lookup[M] { return f.lookup(Regex, String(pattern)) }

// IRegex is Regex with case-insensitive matching.
func (f StringField[M]) IRegex(pattern string) Lookup[M] { return f.lookup(IRegex, String(pattern)) }

// NumberField is a Field over numeric columns with numeric transforms.
type NumberField[M Model, T Number] struct {
	Field[M, T]
}

// NewNumberField constructs a numeric field from path segments.
func NewNumberField[M Model, T Number](segments ...string) NumberField[M, T] {
	return NumberField[M, T]{NewField[M, T](segments...)}
}

// Abs appends the abs transform.
func (f NumberField[M, T]) Abs() NumberField[M, T] {
	return NumberField[M, T]{Field[M, T]{path: f.with(TransformAbs)}}
}

// Ceil appends the ceil transform.
func (f NumberField[M, T]) Ceil() NumberField[M, T] {
	return NumberField[M, T]{Field[M, T]{path: f.with(TransformCeil)}}
}

// Floor appends the floor transform.
func (f NumberField[M, T]) Floor() NumberField[M, T] {
	return NumberField[M, T]{Field[M, T]{path: f.with(TransformFloor)}}
}

// Round appends the round transform.
func (f NumberField[M, T]) Round() NumberField[M, T] {
	return NumberField[M, T]{Field[M, T]{path: f.with(TransformRound)}}
}

// TimeField is a Field over datetime columns with date-part transforms.
type TimeField[M Model] struct {
	Field[M, time.Time]
}

// NewTimeField constructs a datetime field from path segments.
func NewTimeField[M Model](segments ...string) TimeField[M] {
	return TimeField[M]{NewField[M, time.Time](segments...)}
}

func (f TimeField[M]) part(segment string) Field[M, int64] {
	return Field[M, int64]{path: f.with(segment)}
}

// Year extracts the year, yielding an integer-typed field.
func (f TimeField[M]) Year() Field[M, int64] { return f.part(TransformYear) }

// Month extracts the month (1-12).
func (f TimeField[M]) Month() Field[M, int64] { return f.part(TransformMonth) }

// Day extracts the day of month.
func (f TimeField[M]) Day() Field[M, int64] { return f.part(TransformDay) }

// Week extracts the ISO week number.
func (f TimeField[M]) Week() Field[M, int64] { return f.part(TransformWeek) }

// Weekday extracts the day of week.
func (f TimeField[M]) Weekday() Field[M, int64] { return f.part(TransformWeekday) }

// Quarter extracts the quarter (1-4).
func (f TimeField[M]) Quarter() Field[M, int64] { return f.part(TransformQuarter) }

// Hour extracts the hour.
func (f TimeField[M]) Hour() Field[M, int64] { return f.part(TransformHour) }

// Minute extracts the minute.
func (f TimeField[M]) Minute() Field[M, int64] { return f.part(TransformMinute) }

// Second extracts the second.
func (f TimeField[M]) Second() Field[M, int64] { return f.part(TransformSecond) }

// Date truncates to the date part.
func (f TimeField[M]) Date() TimeField[M] {
	return TimeField[M]{Field[M, time.Time]{path: f.with(TransformDate)}}
}
