package cube

// AggregationType is the aggregation a measure applies to the cube's rows
type AggregationType string

const (
	AggregationCount               AggregationType = "count"
	AggregationCountDistinct       AggregationType = "countDistinct"
	AggregationCountDistinctApprox AggregationType = "countDistinctApprox"
	AggregationSum                 AggregationType = "sum"
	AggregationAvg                 AggregationType = "avg"
	AggregationMin                 AggregationType = "min"
	AggregationMax                 AggregationType = "max"
	AggregationNumber              AggregationType = "number"
	AggregationRunningTotal        AggregationType = "runningTotal"
)

// AggregationTypes lists every recognized aggregation type in declaration order
var AggregationTypes = []AggregationType{
	AggregationCount,
	AggregationCountDistinct,
	AggregationCountDistinctApprox,
	AggregationSum,
	AggregationAvg,
	AggregationMin,
	AggregationMax,
	AggregationNumber,
	AggregationRunningTotal,
}

// ParseAggregationType converts an authored type string into an AggregationType
func ParseAggregationType(s string) (AggregationType, bool) {
	t := AggregationType(s)
	return t, t.Valid()
}

// Valid reports whether t is a recognized aggregation type
func (t AggregationType) Valid() bool {
	switch t {
	case AggregationCount,
		AggregationCountDistinct,
		AggregationCountDistinctApprox,
		AggregationSum,
		AggregationAvg,
		AggregationMin,
		AggregationMax,
		AggregationNumber,
		AggregationRunningTotal:
		return true
	}
	return false
}

// RequiresColumn reports whether the aggregation needs a source column.
// Only count can aggregate over the whole row set.
func (t AggregationType) RequiresColumn() bool {
	return t != AggregationCount
}

// ValueType is the type of the values a dimension produces
type ValueType string

const (
	ValueString  ValueType = "string"
	ValueTime    ValueType = "time"
	ValueNumber  ValueType = "number"
	ValueBoolean ValueType = "boolean"
)

// ValueTypes lists every recognized dimension value type
var ValueTypes = []ValueType{ValueString, ValueTime, ValueNumber, ValueBoolean}

// ParseValueType converts an authored type string into a ValueType
func ParseValueType(s string) (ValueType, bool) {
	t := ValueType(s)
	return t, t.Valid()
}

// Valid reports whether t is a recognized value type
func (t ValueType) Valid() bool {
	switch t {
	case ValueString, ValueTime, ValueNumber, ValueBoolean:
		return true
	}
	return false
}

// Relationship is the cardinality of a join between two cubes
type Relationship string

const (
	RelationshipBelongsTo Relationship = "belongsTo"
	RelationshipHasMany   Relationship = "hasMany"
	RelationshipHasOne    Relationship = "hasOne"
)

// Relationships lists every recognized join relationship
var Relationships = []Relationship{RelationshipBelongsTo, RelationshipHasMany, RelationshipHasOne}

// ParseRelationship converts an authored relationship string into a Relationship
func ParseRelationship(s string) (Relationship, bool) {
	r := Relationship(s)
	return r, r.Valid()
}

// Valid reports whether r is a recognized relationship
func (r Relationship) Valid() bool {
	switch r {
	case RelationshipBelongsTo, RelationshipHasMany, RelationshipHasOne:
		return true
	}
	return false
}

// Cube is a validated schema unit: one SQL row set plus its measures,
// dimensions and joins. Maps are never nil on a loaded cube.
type Cube struct {
	Name       string
	SQL        string
	Joins      map[string]Join
	Measures   map[string]Measure
	Dimensions map[string]Dimension
}

// Measure is a named aggregation over the cube's rows
type Measure struct {
	Type        AggregationType
	SQL         string // empty when the aggregation covers the whole row set
	Title       string
	Description *string // nil when not authored
}

// Dimension is a named, typed attribute derived from a column or expression
type Dimension struct {
	SQL         string
	Type        ValueType
	Title       string
	Description *string // nil when not authored
	PrimaryKey  bool
}

// Join declares a relationship from this cube to another cube.
// Joins are validated for shape but never resolved.
type Join struct {
	Relationship Relationship
	SQL          string
}

// Clone returns a deep copy of the cube
func (c *Cube) Clone() *Cube {
	if c == nil {
		return nil
	}

	out := &Cube{
		Name:       c.Name,
		SQL:        c.SQL,
		Joins:      make(map[string]Join, len(c.Joins)),
		Measures:   make(map[string]Measure, len(c.Measures)),
		Dimensions: make(map[string]Dimension, len(c.Dimensions)),
	}
	for name, j := range c.Joins {
		out.Joins[name] = j
	}
	for name, m := range c.Measures {
		out.Measures[name] = m.clone()
	}
	for name, d := range c.Dimensions {
		out.Dimensions[name] = d.clone()
	}
	return out
}

func (m Measure) clone() Measure {
	m.Description = cloneString(m.Description)
	return m
}

func (d Dimension) clone() Dimension {
	d.Description = cloneString(d.Description)
	return d
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
