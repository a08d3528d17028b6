package models

import "fmt"

// AttributeType is the value type of a game attribute. Every answer in a game
// carries one value per attribute, compared with the type's own semantics.
type AttributeType string

const (
	TypeString     AttributeType = "string"
	TypeNumber     AttributeType = "number"
	TypeBoolean    AttributeType = "boolean"
	TypeCollection AttributeType = "collection"
)

// ParseAttributeType validates a client-supplied type name.
func ParseAttributeType(s string) (AttributeType, error) {
	switch AttributeType(s) {
	case TypeString, TypeNumber, TypeBoolean, TypeCollection:
		return AttributeType(s), nil
	}
	return "", fmt.Errorf("unknown attribute type %q", s)
}

// AttributeDefinition is one named, typed column shared by all answers of a
// game. Names are unique within a game; order is the display order.
type AttributeDefinition struct {
	Name string        `json:"name"`
	Type AttributeType `json:"type"`
}
