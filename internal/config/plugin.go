package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Plugin enables a generator plugin. On the wire it is [name, options] where
// options is a mapping or a boolean; a bare name means [name, true].
type Plugin struct {
	Name    string
	Enabled bool
	Options map[string]any
}

// UnmarshalYAML accepts `name`, `[name]`, `[name, bool]` and `[name, {options}]`.
func (p *Plugin) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return fmt.Errorf("line %d: plugin name must not be empty", node.Line)
		}
		*p = Plugin{Name: node.Value, Enabled: true}
		return nil
	case yaml.SequenceNode:
	default:
		return fmt.Errorf("line %d: plugin entry must be a name or [name, options]", node.Line)
	}

	if len(node.Content) == 0 || len(node.Content) > 2 {
		return fmt.Errorf("line %d: plugin entry must be [name] or [name, options]", node.Line)
	}
	name := node.Content[0]
	if name.Kind != yaml.ScalarNode || name.Value == "" {
		return fmt.Errorf("line %d: plugin name must be a non-empty string", name.Line)
	}
	out := Plugin{Name: name.Value, Enabled: true}
	if len(node.Content) == 2 {
		opt := node.Content[1]
		switch {
		case opt.Kind == yaml.MappingNode:
			if err := opt.Decode(&out.Options); err != nil {
				return fmt.Errorf("line %d: plugin %q options: %w", opt.Line, out.Name, err)
			}
			if out.Options == nil {
				out.Options = map[string]any{}
			}
		case opt.Kind == yaml.ScalarNode && opt.Tag == "!!bool":
			if err := opt.Decode(&out.Enabled); err != nil {
				return fmt.Errorf("line %d: plugin %q: %w", opt.Line, out.Name, err)
			}
		default:
			return fmt.Errorf("line %d: options of plugin %q must be a mapping or a boolean", opt.Line, out.Name)
		}
	}
	*p = out
	return nil
}

// MarshalYAML encodes the tuple form.
func (p Plugin) MarshalYAML() (any, error) {
	return p.tuple(), nil
}

// MarshalJSON encodes the tuple form.
func (p Plugin) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.tuple())
}

func (p Plugin) tuple() []any {
	if p.Options != nil {
		return []any{p.Name, p.Options}
	}
	return []any{p.Name, p.Enabled}
}
