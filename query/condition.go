package query

// Op is the closed set of relational operators a Relation may carry.
// The index translators support Eq through Lte; the rest exist so a
// malformed query can be rejected instead of being unrepresentable.
type Op byte

const (
	Eq Op = iota + 1
	Gt
	Gte
	Lt
	Lte
	Neq
	In
)

func (o Op) String() string {
	switch o {
	case Eq:
		return "EQ"
	case Gt:
		return "GT"
	case Gte:
		return "GTE"
	case Lt:
		return "LT"
	case Lte:
		return "LTE"
	case Neq:
		return "NEQ"
	case In:
		return "IN"
	default:
		return "?"
	}
}

// ColumnKey addresses the field a relation compares. System keys form a
// closed enum; user keys are free-form property names.
type ColumnKey interface {
	columnKey()
	String() string
}

type SystemKey byte

const (
	IndexLabelID SystemKey = iota + 1
	FieldValues
	ElementIDs
	Name
)

func (SystemKey) columnKey() {}

func (k SystemKey) String() string {
	switch k {
	case IndexLabelID:
		return "INDEX_LABEL_ID"
	case FieldValues:
		return "FIELD_VALUES"
	case ElementIDs:
		return "ELEMENT_IDS"
	case Name:
		return "NAME"
	default:
		return "?"
	}
}

type UserKey string

func (UserKey) columnKey() {}

func (k UserKey) String() string { return string(k) }

// Condition is a two-variant sum: a Relation leaf or an And pair.
// The marker method keeps the set closed.
type Condition interface {
	condition()
}

type Relation struct {
	Key   ColumnKey
	Op    Op
	Value any
}

func (Relation) condition() {}

// And joins exactly two conditions. For range composition both sides
// must be relations on the same key, e.g. 18 < age AND age < 20.
type And struct {
	Left  Condition
	Right Condition
}

func (And) condition() {}

func NewRelation(key ColumnKey, op Op, value any) Relation {
	return Relation{Key: key, Op: op, Value: value}
}

func NewAnd(left, right Condition) And {
	return And{Left: left, Right: right}
}
