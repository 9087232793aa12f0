package decode

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rzdrail/rzdrail/pkg/rzd"
)

// Value is one node of a raw upstream reply: object, array, scalar or
// null. The upstream's shapes are only loosely specified and drift
// between endpoints (the same station code arrives as a number in one
// reply and as a string in another), so decoders extract fields
// through typed accessors with fallbacks instead of unmarshalling into
// fixed structs.
type Value struct {
	raw any
}

// Parse reads a reply body into a Value tree. Numbers are kept as
// json.Number so integer codes survive untouched.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, &rzd.DecodeError{Reason: "reply is not valid JSON: " + err.Error()}
	}

	return Value{raw: raw}, nil
}

// Exists reports whether the node is present and non-null.
func (v Value) Exists() bool {
	return v.raw != nil
}

// Field returns the named member of an object node. A missing member,
// a null member and a non-object node all yield an absent Value.
func (v Value) Field(name string) Value {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return Value{}
	}

	return Value{raw: obj[name]}
}

// FirstField returns the first of the named members that is present.
// The upstream is inconsistent about casing between endpoints.
func (v Value) FirstField(names ...string) Value {
	for _, name := range names {
		if field := v.Field(name); field.Exists() {
			return field
		}
	}

	return Value{}
}

// Str returns the node as a string.
func (v Value) Str() (string, bool) {
	s, ok := v.raw.(string)

	return s, ok
}

func (v Value) StrOr(fallback string) string {
	if s, ok := v.Str(); ok {
		return s
	}

	return fallback
}

// Int returns the node as an integer, accepting both JSON numbers and
// strings of digits.
func (v Value) Int() (int64, bool) {
	switch raw := v.raw.(type) {
	case json.Number:
		n, err := raw.Int64()
		if err != nil {
			return 0, false
		}

		return n, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

func (v Value) IntOr(fallback int64) int64 {
	if n, ok := v.Int(); ok {
		return n
	}

	return fallback
}

// Array returns the node's elements in upstream order.
func (v Value) Array() ([]Value, bool) {
	raw, ok := v.raw.([]any)
	if !ok {
		return nil, false
	}

	items := make([]Value, len(raw))
	for i, item := range raw {
		items[i] = Value{raw: item}
	}

	return items, true
}

// ArrayOr returns the node's elements, or nil when the node is not an
// array.
func (v Value) ArrayOr() []Value {
	items, _ := v.Array()

	return items
}

// numberString returns a scalar node verbatim, whether the upstream
// sent it as a string or as a number. Tariffs arrive both ways.
func (v Value) numberString() string {
	switch raw := v.raw.(type) {
	case string:
		return raw
	case json.Number:
		return raw.String()
	default:
		return ""
	}
}

// stationCode reads a station code leniently: malformed or absent
// upstream codes fall back to the zero code rather than dropping the
// record, matching how the upstream itself pads these fields.
func (v Value) stationCode() rzd.StationCode {
	return rzd.StationCode(v.IntOr(0))
}

// trainDate parses an optional DD.MM.YYYY field, nil when absent or
// unparseable.
func (v Value) trainDate() *rzd.TrainDate {
	s, ok := v.Str()
	if !ok {
		return nil
	}

	d, err := rzd.ParseTrainDate(s)
	if err != nil {
		return nil
	}

	return &d
}

// trainTime parses an optional HH:MM field, nil when absent or
// unparseable.
func (v Value) trainTime() *rzd.TrainTime {
	s, ok := v.Str()
	if !ok {
		return nil
	}

	t, err := rzd.ParseTrainTime(s)
	if err != nil {
		return nil
	}

	return &t
}
