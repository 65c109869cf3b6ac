package dto

// Document is the top level of a tree definition file.
type Document struct {
	Name string         `json:"name,omitempty" mapstructure:"name"`
	Root map[string]any `json:"root" mapstructure:"root"`
}

// NodeRecord is the raw form of one node of a tree definition.
// Kind-specific keys are kept in Attributes and decoded by the kind factory.
type NodeRecord struct {
	Kind       string         `json:"kind" mapstructure:"kind"`
	ID         string         `json:"id,omitempty" mapstructure:"id"`
	Attributes map[string]any `json:"-" mapstructure:",remain"`
}

// Keys naming nested nodes, shared by every kind.
const (
	KeyChild        = "child"
	KeyChildren     = "children"
	KeyInterrogator = "interrogator"
)
