package cube

import (
	"fmt"
	"sort"
	"strings"
)

// RawCube is a cube schema as authored, before validation
type RawCube struct {
	Name       string                  `yaml:"name,omitempty" json:"name,omitempty"`
	SQL        string                  `yaml:"sql" json:"sql"`
	Joins      map[string]RawJoin      `yaml:"joins,omitempty" json:"joins,omitempty"`
	Measures   map[string]RawMeasure   `yaml:"measures,omitempty" json:"measures,omitempty"`
	Dimensions map[string]RawDimension `yaml:"dimensions,omitempty" json:"dimensions,omitempty"`
}

// RawMeasure is an authored measure entry
type RawMeasure struct {
	SQL         string  `yaml:"sql,omitempty" json:"sql,omitempty"`
	Type        string  `yaml:"type" json:"type"`
	Title       string  `yaml:"title,omitempty" json:"title,omitempty"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
}

// RawDimension is an authored dimension entry
type RawDimension struct {
	SQL         string  `yaml:"sql" json:"sql"`
	Type        string  `yaml:"type" json:"type"`
	Title       string  `yaml:"title,omitempty" json:"title,omitempty"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
	PrimaryKey  bool    `yaml:"primaryKey,omitempty" json:"primaryKey,omitempty"`
}

// RawJoin is an authored join entry
type RawJoin struct {
	Relationship string `yaml:"relationship" json:"relationship"`
	SQL          string `yaml:"sql" json:"sql"`
}

// LoadCube validates an authored cube and returns the loaded definition.
// Checks run in a fixed order and the first violation is returned as a
// *ValidationError. The input is not modified.
func LoadCube(raw RawCube) (*Cube, error) {
	if errs := CheckCube(raw); len(errs) > 0 {
		return nil, errs[0]
	}
	return build(raw), nil
}

// CheckCube runs every validation LoadCube performs and returns all
// violations, in the order LoadCube would report them. It returns nil for a
// valid cube.
func CheckCube(raw RawCube) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(raw.SQL) == "" {
		errs = append(errs, &ValidationError{
			Err:        ErrMissingSourceExpression,
			Field:      "sql",
			Message:    "sql is required",
			Suggestion: "add a select statement or table reference, e.g. 'select * from characters'",
		})
	}

	measures := sortedKeys(raw.Measures)
	for _, name := range measures {
		m := raw.Measures[name]
		if _, ok := ParseAggregationType(m.Type); !ok {
			errs = append(errs, &ValidationError{
				Err:        ErrUnknownAggregationType,
				Field:      fmt.Sprintf("measures.%s.type", name),
				Name:       name,
				Message:    unknownTypeMessage("aggregation type", m.Type),
				Suggestion: fmt.Sprintf("use one of: %s", joinTypes(AggregationTypes)),
			})
		}
	}
	for _, name := range measures {
		m := raw.Measures[name]
		t, ok := ParseAggregationType(m.Type)
		if ok && t.RequiresColumn() && strings.TrimSpace(m.SQL) == "" {
			errs = append(errs, &ValidationError{
				Err:        ErrMissingMeasureColumn,
				Field:      fmt.Sprintf("measures.%s.sql", name),
				Name:       name,
				Message:    fmt.Sprintf("measure '%s' of type '%s' requires sql", name, t),
				Suggestion: "name the column to aggregate, or use type 'count'",
			})
		}
	}

	dimensions := sortedKeys(raw.Dimensions)
	for _, name := range dimensions {
		d := raw.Dimensions[name]
		if _, ok := ParseValueType(d.Type); !ok {
			errs = append(errs, &ValidationError{
				Err:        ErrUnknownValueType,
				Field:      fmt.Sprintf("dimensions.%s.type", name),
				Name:       name,
				Message:    unknownTypeMessage("value type", d.Type),
				Suggestion: fmt.Sprintf("use one of: %s", joinTypes(ValueTypes)),
			})
		}
	}
	for _, name := range dimensions {
		if strings.TrimSpace(raw.Dimensions[name].SQL) == "" {
			errs = append(errs, &ValidationError{
				Err:        ErrMissingDimensionColumn,
				Field:      fmt.Sprintf("dimensions.%s.sql", name),
				Name:       name,
				Message:    fmt.Sprintf("dimension '%s' requires sql", name),
				Suggestion: fmt.Sprintf("reference the underlying column, e.g. 'sql: %s'", name),
			})
		}
	}

	for _, name := range sortedKeys(raw.Joins) {
		j := raw.Joins[name]
		if _, ok := ParseRelationship(j.Relationship); !ok {
			errs = append(errs, &ValidationError{
				Err:        ErrUnknownRelationship,
				Field:      fmt.Sprintf("joins.%s.relationship", name),
				Name:       name,
				Message:    unknownTypeMessage("relationship", j.Relationship),
				Suggestion: fmt.Sprintf("use one of: %s", joinTypes(Relationships)),
			})
		}
		if strings.TrimSpace(j.SQL) == "" {
			errs = append(errs, &ValidationError{
				Err:        ErrMissingJoinCondition,
				Field:      fmt.Sprintf("joins.%s.sql", name),
				Name:       name,
				Message:    fmt.Sprintf("join '%s' requires a join condition", name),
				Suggestion: "add an ON condition, e.g. 'sql: {CUBE}.country_id = {Countries}.id'",
			})
		}
	}

	if strings.TrimSpace(raw.Name) == "" {
		errs = append(errs, &ValidationError{
			Err:        ErrMissingCubeName,
			Field:      "name",
			Message:    "name is required",
			Suggestion: "add 'name: Characters' or name the file after the cube",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// build converts a raw cube that already passed CheckCube
func build(raw RawCube) *Cube {
	c := &Cube{
		Name:       strings.TrimSpace(raw.Name),
		SQL:        strings.TrimSpace(raw.SQL),
		Joins:      make(map[string]Join, len(raw.Joins)),
		Measures:   make(map[string]Measure, len(raw.Measures)),
		Dimensions: make(map[string]Dimension, len(raw.Dimensions)),
	}

	for name, j := range raw.Joins {
		c.Joins[name] = Join{
			Relationship: Relationship(j.Relationship),
			SQL:          strings.TrimSpace(j.SQL),
		}
	}
	for name, m := range raw.Measures {
		c.Measures[name] = Measure{
			Type:        AggregationType(m.Type),
			SQL:         strings.TrimSpace(m.SQL),
			Title:       titleOrDefault(m.Title, name),
			Description: cloneString(m.Description),
		}
	}
	for name, d := range raw.Dimensions {
		c.Dimensions[name] = Dimension{
			SQL:         strings.TrimSpace(d.SQL),
			Type:        ValueType(d.Type),
			Title:       titleOrDefault(d.Title, name),
			Description: cloneString(d.Description),
			PrimaryKey:  d.PrimaryKey,
		}
	}
	return c
}

// Raw converts a loaded cube back into its authored form
func (c *Cube) Raw() RawCube {
	raw := RawCube{
		Name:       c.Name,
		SQL:        c.SQL,
		Joins:      make(map[string]RawJoin, len(c.Joins)),
		Measures:   make(map[string]RawMeasure, len(c.Measures)),
		Dimensions: make(map[string]RawDimension, len(c.Dimensions)),
	}
	for name, j := range c.Joins {
		raw.Joins[name] = RawJoin{Relationship: string(j.Relationship), SQL: j.SQL}
	}
	for name, m := range c.Measures {
		raw.Measures[name] = RawMeasure{
			SQL:         m.SQL,
			Type:        string(m.Type),
			Title:       m.Title,
			Description: cloneString(m.Description),
		}
	}
	for name, d := range c.Dimensions {
		raw.Dimensions[name] = RawDimension{
			SQL:         d.SQL,
			Type:        string(d.Type),
			Title:       d.Title,
			Description: cloneString(d.Description),
			PrimaryKey:  d.PrimaryKey,
		}
	}
	return raw
}

func titleOrDefault(title, name string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return Humanize(name)
}

func unknownTypeMessage(kind, value string) string {
	if value == "" {
		return fmt.Sprintf("%s is required", kind)
	}
	return fmt.Sprintf("unknown %s '%s'", kind, value)
}

func joinTypes[T ~string](types []T) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
