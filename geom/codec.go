// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ---------- Axis ----------

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxis, a)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "row":
		*a = Row
	case "column":
		*a = Column
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAxis, text)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Axis) MarshalYAML() (interface{}, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Axis) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected scalar at line %d", ErrUnknownAxis, value.Line)
	}
	return a.UnmarshalText([]byte(value.Value))
}

// ---------- Direction ----------

// ParseDirection maps a name produced by Direction.String back to its value.
func ParseDirection(name string) (Direction, error) {
	for _, d := range Directions() {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Direction) MarshalYAML() (interface{}, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected scalar at line %d", ErrUnknownDirection, value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}

// ---------- Coordinate / Offset ----------

// MarshalYAML encodes c as the flow sequence [row, column].
func (c Coordinate) MarshalYAML() (interface{}, error) {
	return pairNode(c.Row, c.Column), nil
}

// UnmarshalYAML decodes [row, column]; a negative axis is ErrNegativeCoordinate.
func (c *Coordinate) UnmarshalYAML(value *yaml.Node) error {
	row, col, err := decodePair(value)
	if err != nil {
		return err
	}
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: [%d, %d] at line %d", ErrNegativeCoordinate, row, col, value.Line)
	}
	*c = Coordinate{Row: row, Column: col}
	return nil
}

// MarshalYAML encodes o as the flow sequence [row, column].
func (o Offset) MarshalYAML() (interface{}, error) {
	return pairNode(o.Row, o.Column), nil
}

// UnmarshalYAML decodes [row, column].
func (o *Offset) UnmarshalYAML(value *yaml.Node) error {
	row, col, err := decodePair(value)
	if err != nil {
		return err
	}
	*o = Offset{Row: row, Column: col}
	return nil
}

func pairNode(row, col int) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(row)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(col)},
		},
	}
}

func decodePair(value *yaml.Node) (row, col int, err error) {
	var pair []int
	if err = value.Decode(&pair); err != nil {
		return 0, 0, err
	}
	if len(pair) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d at line %d", ErrPairLength, len(pair), value.Line)
	}
	return pair[0], pair[1], nil
}
