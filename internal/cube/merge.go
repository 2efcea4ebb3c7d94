package cube

import (
	"fmt"
	"reflect"
	"sort"
)

// MergeCube layers overlay on top of base and returns a new cube.
//
// Every measure, dimension and join present in overlay replaces the entry of
// the same name in base as a whole. Entries only in base are kept and entries
// only in overlay are added. The source expression is taken from overlay.
// Neither input is modified.
func MergeCube(base, overlay *Cube) (*Cube, error) {
	if base == nil || overlay == nil {
		return nil, fmt.Errorf("cannot merge a nil cube")
	}
	if base.Name != overlay.Name {
		return nil, &ValidationError{
			Err:        ErrCubeNameMismatch,
			Field:      "name",
			Name:       overlay.Name,
			Message:    fmt.Sprintf("cannot merge cube '%s' into cube '%s'", overlay.Name, base.Name),
			Suggestion: "only revisions of the same cube can be merged",
		}
	}

	merged := base.Clone()
	merged.SQL = overlay.SQL
	for name, j := range overlay.Joins {
		merged.Joins[name] = j
	}
	for name, m := range overlay.Measures {
		merged.Measures[name] = m.clone()
	}
	for name, d := range overlay.Dimensions {
		merged.Dimensions[name] = d.clone()
	}
	return merged, nil
}

// ChangeKind describes what a merge does to one entry
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeReplaced ChangeKind = "replaced"
)

// EntryKind names the section of a cube an entry belongs to
type EntryKind string

const (
	EntrySQL       EntryKind = "sql"
	EntryJoin      EntryKind = "join"
	EntryMeasure   EntryKind = "measure"
	EntryDimension EntryKind = "dimension"
)

// Change is one entry that MergeCube would add or replace
type Change struct {
	Kind  ChangeKind
	Entry EntryKind
	Name  string
}

// String returns a one-line description like "added measure uniqueFirstNames"
func (c Change) String() string {
	if c.Entry == EntrySQL {
		return fmt.Sprintf("%s source expression", c.Kind)
	}
	return fmt.Sprintf("%s %s %s", c.Kind, c.Entry, c.Name)
}

// Changes lists the entries that merging overlay into base would add or
// replace. Entries identical in both cubes are omitted. The result is sorted
// by entry kind, then name.
func Changes(base, overlay *Cube) []Change {
	var changes []Change

	if base.SQL != overlay.SQL {
		changes = append(changes, Change{Kind: ChangeReplaced, Entry: EntrySQL})
	}
	changes = append(changes, diffEntries(EntryJoin, base.Joins, overlay.Joins)...)
	changes = append(changes, diffEntries(EntryMeasure, base.Measures, overlay.Measures)...)
	changes = append(changes, diffEntries(EntryDimension, base.Dimensions, overlay.Dimensions)...)

	entryOrder := map[EntryKind]int{EntrySQL: 0, EntryJoin: 1, EntryMeasure: 2, EntryDimension: 3}
	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].Entry != changes[j].Entry {
			return entryOrder[changes[i].Entry] < entryOrder[changes[j].Entry]
		}
		return changes[i].Name < changes[j].Name
	})
	return changes
}

func diffEntries[V any](entry EntryKind, base, overlay map[string]V) []Change {
	var changes []Change
	for name, next := range overlay {
		prev, ok := base[name]
		switch {
		case !ok:
			changes = append(changes, Change{Kind: ChangeAdded, Entry: entry, Name: name})
		case !reflect.DeepEqual(prev, next):
			changes = append(changes, Change{Kind: ChangeReplaced, Entry: entry, Name: name})
		}
	}
	return changes
}
