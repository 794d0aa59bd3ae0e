package tools

import "encoding/json"

// Param type names mirror the JSON-schema primitives the host understands.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeObject  = "object"
)

// Param describes one argument of a tool: its type, whether the caller must
// supply it, and the default filled in when an optional argument is absent.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Default     any
}

// Spec declares a tool: catalog metadata plus everything needed to turn an
// argument bag into a partner request. The declared params fully determine
// the wire body; Build is nil for tools that send no body.
type Spec struct {
	Name        string
	Description string
	Method      string
	Path        string
	Params      []Param
	Build       func(args map[string]any) (map[string]any, error)
}

// ParameterSchema renders the parameter contract as a JSON-schema object.
func (s Spec) ParameterSchema() string {
	props := map[string]any{}
	var required []string
	for _, p := range s.Params {
		prop := map[string]any{"type": p.Type}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		props[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	b, _ := json.MarshalIndent(schema, "", "  ")
	return string(b)
}

// Call is a single invocation request: a tool name and its argument bag.
// Calls are transient and carry no identity beyond themselves.
type Call struct {
	Tool string
	Args map[string]any
}

// Result is the normalized outcome of a call. Exactly one side is populated:
// Payload holds the partner's decoded response forwarded verbatim, Err holds
// a single-line "Error: ..." description.
type Result struct {
	Payload any
	Err     string
}

func (r Result) Ok() bool { return r.Err == "" }
