// Package schema compiles command descriptors into function-calling tool
// schemas.
package schema

// Schema type vocabulary. Every compiled parameter lands on exactly one of
// these.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// ToolSpec is the machine-consumable schema for one command, in the
// function-calling convention.
type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  ToolParameters `json:"parameters"`
}

// ToolParameters is the parameters object of a ToolSpec.
type ToolParameters struct {
	Type       string                   `json:"type"`
	Properties map[string]ParameterSpec `json:"properties"`
	Required   []string                 `json:"required"`
}

// ParameterSpec describes a single parameter in a ToolSpec.
type ParameterSpec struct {
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	Enum        []string   `json:"enum,omitempty"`
	Default     any        `json:"default,omitempty"`
	Items       *ItemsSpec `json:"items,omitempty"`
}

// ItemsSpec describes the element type of an array parameter.
type ItemsSpec struct {
	Type string `json:"type"`
}
