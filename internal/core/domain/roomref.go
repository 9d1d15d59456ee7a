package domain

import (
	"bytes"
	"encoding/json"
)

// RoomRefKind tags the shape a unit reference arrived in.
type RoomRefKind int

const (
	// RefNone means the field was absent, null, or unreadable.
	RefNone RoomRefKind = iota
	// RefScalar is a bare identifier ("101" or 101).
	RefScalar
	// RefEmbedded is an object carrying the identifier under room_number.
	RefEmbedded
	// RefList is an array whose elements are themselves references.
	RefList
)

// RoomRef models the three shapes upstream records use to point at a unit:
// a scalar identifier, an object with a nested room_number, or an array of
// either. A single recursive resolver replaces the per-call-site branching
// the upstream payloads would otherwise force everywhere.
type RoomRef struct {
	kind RoomRefKind
	id   FlexID
	list []RoomRef
}

// ScalarRef builds a bare-identifier reference.
func ScalarRef(id FlexID) RoomRef {
	return RoomRef{kind: RefScalar, id: id}
}

// EmbeddedRef builds an object-shaped reference ({room_number: id}).
func EmbeddedRef(id FlexID) RoomRef {
	return RoomRef{kind: RefEmbedded, id: id}
}

// ListRef builds an array-shaped reference.
func ListRef(refs ...RoomRef) RoomRef {
	return RoomRef{kind: RefList, list: refs}
}

// Kind reports the shape this reference arrived in.
func (r RoomRef) Kind() RoomRefKind {
	return r.kind
}

// IsZero reports whether no reference is present.
func (r RoomRef) IsZero() bool {
	return r.kind == RefNone
}

// MatchesID reports whether this reference resolves to the given unit
// identifier. For list references any element may satisfy the match.
func (r RoomRef) MatchesID(id FlexID) bool {
	switch r.kind {
	case RefScalar, RefEmbedded:
		return r.id.Equals(id)
	case RefList:
		for _, elem := range r.list {
			if elem.MatchesID(id) {
				return true
			}
		}
	}
	return false
}

// UnmarshalJSON accepts every shape the collaborators emit. Unrecognized
// shapes decode to the zero reference: a record missing or mangling its
// identity field is non-matching, never an error.
func (r *RoomRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = RoomRef{}
		return nil
	}

	switch data[0] {
	case '[':
		var elems []RoomRef
		if err := json.Unmarshal(data, &elems); err != nil {
			*r = RoomRef{}
			return nil
		}
		*r = RoomRef{kind: RefList, list: elems}
	case '{':
		var obj struct {
			RoomNumber FlexID `json:"room_number"`
			CamelCased FlexID `json:"roomNumber"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			*r = RoomRef{}
			return nil
		}
		id := obj.RoomNumber
		if id.IsZero() {
			id = obj.CamelCased
		}
		if id.IsZero() {
			*r = RoomRef{}
			return nil
		}
		*r = RoomRef{kind: RefEmbedded, id: id}
	default:
		var id FlexID
		if err := json.Unmarshal(data, &id); err != nil || id.IsZero() {
			*r = RoomRef{}
			return nil
		}
		*r = RoomRef{kind: RefScalar, id: id}
	}
	return nil
}
