package questions

import (
	"encoding/json"
	"strings"
)

// ValueSeparator joins multi-select values when an answer is rendered as one line.
const ValueSeparator = ", "

// Answer is a committed answer value: a single string for free-text and
// single-select questions, an ordered list for multi-select questions.
type Answer struct {
	text   string
	values []string
	multi  bool
}

// Text returns a single-valued answer.
func Text(s string) Answer {
	return Answer{text: s}
}

// Multi returns a multi-valued answer holding a copy of values.
func Multi(values []string) Answer {
	return Answer{values: append([]string(nil), values...), multi: true}
}

// IsMulti reports whether the answer came from a multi-select question.
func (a Answer) IsMulti() bool {
	return a.multi
}

// Values returns the answer's values. A single-valued answer yields one element.
func (a Answer) Values() []string {
	if !a.multi {
		return []string{a.text}
	}
	return append([]string(nil), a.values...)
}

// String renders the answer on one line, joining multiple values with ValueSeparator.
func (a Answer) String() string {
	if !a.multi {
		return a.text
	}
	return strings.Join(a.values, ValueSeparator)
}

// MarshalJSON encodes a single value as a JSON string and multiple values as an array.
func (a Answer) MarshalJSON() ([]byte, error) {
	if !a.multi {
		return json.Marshal(a.text)
	}
	if a.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.values)
}

// MarshalYAML mirrors MarshalJSON for yaml.v3 encoders.
func (a Answer) MarshalYAML() (interface{}, error) {
	if !a.multi {
		return a.text, nil
	}
	return a.Values(), nil
}
