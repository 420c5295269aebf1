package entities

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

// StyleRule for reference see: https://developers.google.com/maps/documentation/javascript/style-reference
type StyleRule struct {
	FeatureType string  `json:"featureType,omitempty" yaml:"featureType,omitempty"`
	ElementType string  `json:"elementType,omitempty" yaml:"elementType,omitempty"`
	Stylers     Stylers `json:"stylers" yaml:"stylers"`
}

// Styler is a single property/value pair of a StyleRule, e.g. {"color": "#303748"}.
type Styler struct {
	Key   string
	Value any
}

// Stylers keeps the document order of every styler entry. An object holding
// more than one key is flattened into one Styler per key, in the order the
// keys appear.
type Stylers []Styler

func (s Styler) MarshalJSON() ([]byte, error) {
	key, err := json.Marshal(s.Key)
	if err != nil {
		return nil, err
	}
	value, err := json.Marshal(s.Value)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(value)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s Styler) MarshalYAML() (interface{}, error) {
	return yaml.MapSlice{{Key: s.Key, Value: s.Value}}, nil
}

func (s *Stylers) UnmarshalJSON(data []byte) error {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("stylers must be a list: %w", err)
	}

	result := make(Stylers, 0, len(entries))
	for _, entry := range entries {
		stylers, err := decodeStylerObject(entry)
		if err != nil {
			return err
		}
		result = append(result, stylers...)
	}

	*s = result
	return nil
}

func decodeStylerObject(data []byte) ([]Styler, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read styler: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("styler must be an object, got %s", data)
	}

	var stylers []Styler
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read styler key: %w", err)
		}
		key, _ := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to read styler %q: %w", key, err)
		}
		stylers = append(stylers, Styler{Key: key, Value: value})
	}

	return stylers, nil
}

func (s *Stylers) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var entries []yaml.MapSlice
	if err := unmarshal(&entries); err != nil {
		return fmt.Errorf("stylers must be a list of mappings: %w", err)
	}

	result := make(Stylers, 0, len(entries))
	for _, entry := range entries {
		for _, item := range entry {
			result = append(result, Styler{Key: fmt.Sprint(item.Key), Value: item.Value})
		}
	}

	*s = result
	return nil
}
