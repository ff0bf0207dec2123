package mapfile

import (
	"fmt"
)

// ErrStationIndex indicates a reference to a station that does not exist
type ErrStationIndex struct {
	Entity string // "segment" or "transfer"
	Index  int    // position of the referencing entity
	Ref    int    // offending station index
	Count  int    // number of stations in the map
}

func (e *ErrStationIndex) Error() string {
	return fmt.Sprintf("%s %d references station %d (map has %d stations)",
		e.Entity, e.Index, e.Ref, e.Count)
}

// ErrLineIndex indicates a reference to a line that does not exist
type ErrLineIndex struct {
	Entity string
	Index  int
	Ref    int
}

func (e *ErrLineIndex) Error() string {
	return fmt.Sprintf("%s %d references unknown line %d", e.Entity, e.Index, e.Ref)
}

// ErrDuplicateSegment indicates two segments sharing an ID
type ErrDuplicateSegment struct {
	ID int
}

func (e *ErrDuplicateSegment) Error() string {
	return fmt.Sprintf("duplicate segment id %d", e.ID)
}

// ErrInvalidValue indicates a malformed point, rectangle or color string
type ErrInvalidValue struct {
	Field  string
	Value  string
	Reason string
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
