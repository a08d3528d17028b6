package models

// Answer is one candidate entity a player can guess. The name doubles as the
// lookup key in the game's answer map. Attribute values are stored as raw
// text; a collection value is a single comma-delimited string.
type Answer struct {
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes"`
}

// AnswerMap is the game's answer set keyed by answer name.
type AnswerMap map[string]Answer

// AttributeValue resolves an answer's value for one attribute, substituting
// the "N/A" sentinel when the attribute is absent from the map.
func (a Answer) AttributeValue(name string) string {
	if v, ok := a.Attributes[name]; ok {
		return v
	}
	return ValueNotAvailable
}

// ValueNotAvailable stands in for attribute values an answer does not carry.
const ValueNotAvailable = "N/A"
