package domain

import "encoding/json"

// Text is a JSON value read as text without failing on unexpected types.
// A JSON string keeps its decoded value, any other value keeps its raw encoding,
// and null or an absent field leaves Text unset.
type Text struct {
	value    string
	isString bool
	set      bool
}

// NewText returns a Text holding the given string.
func NewText(s string) Text {
	return Text{value: s, isString: true, set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Text{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = NewText(s)
		return nil
	}

	*t = Text{value: string(data), set: true}
	return nil
}

// IsSet reports whether the field was present with a non-null value
func (t Text) IsSet() bool {
	return t.set
}

// Equals reports whether t is a JSON string equal to s
func (t Text) Equals(s string) bool {
	return t.isString && t.value == s
}

func (t Text) String() string {
	return t.value
}
