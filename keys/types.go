package keys

// EntityType selects both the keyspace partition and the key encoding
// rules for that partition. The set is closed: adding a table means
// adding a constant here.
type EntityType byte

const (
	Unknown EntityType = 0

	VertexLabel EntityType = 1
	EdgeLabel   EntityType = 2
	PropertyKey EntityType = 3
	IndexLabel  EntityType = 4

	Vertex EntityType = 101
	Edge   EntityType = 120

	SecondaryIndex EntityType = 150
	RangeIndex     EntityType = 151

	Counter EntityType = 180
)

// Code is the partition prefix byte of every key stored for this type.
func (t EntityType) Code() byte {
	return byte(t)
}

func (t EntityType) TableName() string {
	switch t {
	case VertexLabel:
		return "vl"
	case EdgeLabel:
		return "el"
	case PropertyKey:
		return "pk"
	case IndexLabel:
		return "il"
	case Vertex:
		return "v"
	case Edge:
		return "e"
	case SecondaryIndex:
		return "si"
	case RangeIndex:
		return "ri"
	case Counter:
		return "c"
	default:
		return "?"
	}
}

func (t EntityType) String() string {
	switch t {
	case VertexLabel:
		return "vertex-label"
	case EdgeLabel:
		return "edge-label"
	case PropertyKey:
		return "property-key"
	case IndexLabel:
		return "index-label"
	case Vertex:
		return "vertex"
	case Edge:
		return "edge"
	case SecondaryIndex:
		return "secondary-index"
	case RangeIndex:
		return "range-index"
	case Counter:
		return "counter"
	default:
		return "unknown"
	}
}

func (t EntityType) IsIndex() bool {
	return t == SecondaryIndex || t == RangeIndex
}
