package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/framecode/pkg/scene"
)

// declarations is an ordered style map on the wire. Object key order is
// kept so that the rendered rules list properties in host order.
type declarations []scene.Declaration

// UnmarshalJSON decodes an object of property → string|number|bool.
func (d *declarations) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*d = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("css: expected object, got %v", tok)
	}

	var out declarations
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("css %s: %w", key, err)
		}
		var s string
		switch val := v.(type) {
		case string:
			s = val
		case json.Number:
			s = val.String()
		case bool:
			s = strconv.FormatBool(val)
		default:
			return fmt.Errorf("css %s: value must be a string or number", key)
		}
		out = append(out, scene.Declaration{Property: key, Value: s})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = out
	return nil
}

// MarshalJSON encodes the declarations as an object in order.
func (d declarations) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, decl := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(decl.Property)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(decl.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a mapping of property → scalar.
func (d *declarations) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: css must be a mapping", value.Line)
	}
	out := make(declarations, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: css %s: value must be a scalar", v.Line, k.Value)
		}
		out = append(out, scene.Declaration{Property: k.Value, Value: v.Value})
	}
	*d = out
	return nil
}

// MarshalYAML encodes the declarations as a mapping in order.
func (d declarations) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, decl := range d {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: decl.Property},
			&yaml.Node{Kind: yaml.ScalarNode, Value: decl.Value},
		)
	}
	return m, nil
}
