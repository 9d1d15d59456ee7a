package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexID is a unit identifier that upstream services serialize inconsistently:
// sometimes as a JSON string, sometimes as a number. Both forms normalize to a
// canonical string so that 101 and "101" compare equal.
type FlexID string

// NewFlexID canonicalizes a raw identifier string.
func NewFlexID(raw string) FlexID {
	return FlexID(canonicalID(raw))
}

// UnmarshalJSON accepts a string, a number, or null. Any other shape decodes
// to the zero FlexID instead of failing, because a malformed identity field
// must read as "no match", never as an error.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexID(canonicalID(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*f = ""
		return nil
	}
	*f = FlexID(canonicalID(n.String()))
	return nil
}

// IsZero reports whether no identifier is present.
func (f FlexID) IsZero() bool {
	return f == ""
}

// Equals compares two identifiers in their canonical form.
func (f FlexID) Equals(other FlexID) bool {
	return !f.IsZero() && f == other
}

func (f FlexID) String() string {
	return string(f)
}

// canonicalID collapses numeric spellings of the same identifier ("5", "5.0",
// 5) onto one representative so string and native comparisons agree.
func canonicalID(s string) string {
	if s == "" {
		return ""
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil && fl == float64(int64(fl)) {
		return strconv.FormatInt(int64(fl), 10)
	}
	return s
}
