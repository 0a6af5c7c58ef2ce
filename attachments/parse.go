package attachments

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// ParsePayload parses a JSON or YAML mapping into a Payload, keeping the order of its keys. An
// empty input is an empty payload
func ParsePayload(raw string) (p Payload, err error) {
	node, err := parseMapping(raw)
	if err != nil || node == nil {
		return nil, errors.Wrap(err, "invalid payload")
	}

	p = make(Payload, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v interface{}
		if err := node.Content[i+1].Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "invalid payload value for key [%s]", node.Content[i].Value)
		}

		p = append(p, PayloadEntry{Key: node.Content[i].Value, Value: v})
	}

	return p, nil
}

// ParseOverrides parses a JSON or YAML mapping into attachment overrides. A null value, at any
// depth, is an unset override keeping the current value. An empty input has no overrides
func ParseOverrides(raw string) (o Overrides, err error) {
	node, err := parseMapping(raw)
	if err != nil || node == nil {
		return nil, errors.Wrap(err, "invalid attachment properties")
	}

	o = make(Overrides, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		v, err := overrideValue(node.Content[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid attachment property [%s]", node.Content[i].Value)
		}

		if ov, isOverride := v.(Override); isOverride {
			o[node.Content[i].Value] = ov
		} else {
			o[node.Content[i].Value] = Value(v)
		}
	}

	return o, nil
}

// ParseContextFields parses a list of context field names separated by commas or spaces. JSON
// and YAML sequence syntax as well as a leading colon on names are tolerated. An empty input is
// an empty set
func ParseContextFields(raw string) (s ContextFieldSet, err error) {
	names := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(", \t\r\n[]\"'", r)
	})

	s = NewContextFieldSet()
	for _, name := range names {
		f, ok := ContextFieldByName(strings.TrimPrefix(name, ":"))
		if !ok {
			return nil, errors.Errorf("unknown context field [%s], must be one of %v", name, NewContextFieldSet(ContextFields()...).Names())
		}

		s[f] = struct{}{}
	}

	return s, nil
}

// parseMapping returns the mapping node of a JSON or YAML document or nil if the document is empty
func parseMapping(raw string) (node *yaml.Node, err error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	node = resolveAlias(doc.Content[0])
	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("expected a mapping but got [%s]", strings.TrimSpace(raw))
	}

	return node, nil
}

// overrideValue converts a node to a value where nulls in mappings are unset overrides
func overrideValue(node *yaml.Node) (v interface{}, err error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.MappingNode:
		m := make(map[string]interface{}, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			if m[node.Content[i].Value], err = overrideValue(node.Content[i+1]); err != nil {
				return nil, err
			}
		}

		return m, nil
	case yaml.SequenceNode:
		s := make([]interface{}, 0, len(node.Content))
		for _, e := range node.Content {
			var v interface{}
			if err := e.Decode(&v); err != nil {
				return nil, err
			}

			s = append(s, v)
		}

		return s, nil
	case yaml.ScalarNode:
		if node.Tag == nullTag {
			return Unset(), nil
		}
	}

	if err := node.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}
