package questionnaire

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Value is a single answer: a scalar string for most question types,
// or a list of strings for multi-select questions. The zero Value is
// the unanswered state. On the wire and in the stored document it is
// either a JSON string or a JSON array of strings.
type Value struct {
	Single string
	Multi  []string
}

// StringValue wraps a scalar answer.
func StringValue(s string) Value { return Value{Single: s} }

// ListValue wraps a multi-select answer.
func ListValue(items ...string) Value { return Value{Multi: items} }

// IsEmpty reports whether the value counts as unanswered.
func (v Value) IsEmpty() bool { return v.Single == "" && len(v.Multi) == 0 }

// IsList reports whether the value carries a multi-select list.
func (v Value) IsList() bool { return v.Multi != nil }

// Equal compares two values structurally. Lists compare element for
// element in order. Every empty form (zero value, "", empty list) is
// equal to every other empty form, so clearing a multi-select matches
// an unanswered scalar baseline.
func (v Value) Equal(other Value) bool {
	if v.IsEmpty() && other.IsEmpty() {
		return true
	}
	if v.IsList() != other.IsList() {
		return false
	}
	if !v.IsList() {
		return v.Single == other.Single
	}
	if len(v.Multi) != len(other.Multi) {
		return false
	}
	for i := range v.Multi {
		if v.Multi[i] != other.Multi[i] {
			return false
		}
	}
	return true
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.Multi)
	}
	return json.Marshal(v.Single)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{Single: s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = Value{Multi: list}
		return nil
	}
	return fmt.Errorf("answer value must be a string or an array of strings, got %s", data)
}

// AnswerMap maps question ids to answers. Keys not present in the
// current schema are carried through storage untouched but are never
// rendered or validated.
type AnswerMap map[string]Value

// Clone returns a deep copy so a session can mutate its working copy
// without touching the baseline.
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		if v.IsList() {
			list := make([]string, len(v.Multi))
			copy(list, v.Multi)
			v = Value{Multi: list}
		}
		out[k] = v
	}
	return out
}

// Value / Scan let gorm persist an AnswerMap in a jsonb column.

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *AnswerMap) Scan(src interface{}) error {
	if src == nil {
		*m = AnswerMap{}
		return nil
	}
	var data []byte
	switch raw := src.(type) {
	case []byte:
		data = raw
	case string:
		data = []byte(raw)
	default:
		return errors.New("answer map column is not text or bytes")
	}
	return json.Unmarshal(data, m)
}
