package struct_registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/binwire/binconv"
)

// YAML schema document format:
//
//	structs:
//	  - name: trigger_status
//	    endianness: little        # struct default; "little" or "big"
//	    fields:
//	      - name: id
//	        type: uint16
//	        endianness: big       # optional per-field override
//	      - name: flag
//	        type: uint8
//	      - name: channel_label
//	        type: text
//	        width: 8              # required for text and bytes
//	      - name: window
//	        type: struct
//	        struct: trigger_window  # must be declared earlier in the document
//
// Field widths for integer and float types are implied by the type tag; a
// contradicting width is rejected at registration. Struct-typed fields take
// their width from the referenced struct.
type schemaDocument struct {
	Structs []structDecl `yaml:"structs"`
}

type structDecl struct {
	Name       string      `yaml:"name"`
	Endianness string      `yaml:"endianness"`
	Fields     []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Width      int    `yaml:"width"`
	Struct     string `yaml:"struct"`
	Endianness string `yaml:"endianness"`
}

// LoadYAML registers every struct declared in the YAML document. It is part
// of the initialization phase and follows the same single-writer discipline
// as Register. Loading stops at the first invalid declaration; nothing is
// rolled back, so a failed load should be treated as fatal during startup.
func (s *Store) LoadYAML(data []byte) error {
	var doc schemaDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse schema document: %w", err)
	}

	for _, decl := range doc.Structs {
		defaultEndianness := binconv.LittleEndian
		if decl.Endianness != "" {
			var err error
			defaultEndianness, err = binconv.ParseEndianness(decl.Endianness)
			if err != nil {
				return fmt.Errorf("%w: struct %q: %v", ErrInvalidSpec, decl.Name, err)
			}
		}

		fields := make([]FieldSpec, 0, len(decl.Fields))
		for _, f := range decl.Fields {
			fieldType, err := ParseFieldType(f.Type)
			if err != nil {
				return fmt.Errorf("struct %q field %q: %w", decl.Name, f.Name, err)
			}
			spec := FieldSpec{Name: f.Name, Type: fieldType, Width: f.Width, Struct: f.Struct}
			if f.Endianness != "" {
				e, err := binconv.ParseEndianness(f.Endianness)
				if err != nil {
					return fmt.Errorf("%w: struct %q field %q: %v", ErrInvalidSpec, decl.Name, f.Name, err)
				}
				spec.Endianness = &e
			}
			fields = append(fields, spec)
		}

		if _, err := s.Register(decl.Name, fields, defaultEndianness); err != nil {
			return err
		}
	}
	return nil
}

// LoadYAMLFile reads a schema document from disk and registers its structs.
func (s *Store) LoadYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read schema document %s: %w", path, err)
	}
	return s.LoadYAML(data)
}
