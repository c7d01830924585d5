package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// HeadTag is an element injected into the <head> of every generated page.
// On the wire it is a tuple: [tagName, {attr: value}] with an optional third
// element holding inner content.
type HeadTag struct {
	Name    string
	Attrs   map[string]string
	Content string
}

// UnmarshalYAML decodes the tuple form.
func (h *HeadTag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 || len(node.Content) > 3 {
		return fmt.Errorf("line %d: head entry must be [tag, attributes] or [tag, attributes, content]", node.Line)
	}
	var out HeadTag
	name := node.Content[0]
	if name.Kind != yaml.ScalarNode || name.Value == "" {
		return fmt.Errorf("line %d: head tag name must be a non-empty string", name.Line)
	}
	out.Name = name.Value
	if len(node.Content) > 1 {
		attrs := node.Content[1]
		if attrs.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: attributes of head tag %q must be a mapping", attrs.Line, out.Name)
		}
		if err := attrs.Decode(&out.Attrs); err != nil {
			return fmt.Errorf("line %d: head tag %q: %w", attrs.Line, out.Name, err)
		}
	}
	if len(node.Content) > 2 {
		content := node.Content[2]
		if content.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: content of head tag %q must be a string", content.Line, out.Name)
		}
		out.Content = content.Value
	}
	*h = out
	return nil
}

// MarshalYAML encodes the tuple form.
func (h HeadTag) MarshalYAML() (any, error) {
	return h.tuple(), nil
}

// MarshalJSON encodes the tuple form.
func (h HeadTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.tuple())
}

func (h HeadTag) tuple() []any {
	attrs := h.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	t := []any{h.Name, attrs}
	if h.Content != "" {
		t = append(t, h.Content)
	}
	return t
}
