package compiler

import (
	"fmt"

	"github.com/aretw0/wasteland/pkg/domain"
	"gopkg.in/yaml.v3"
)

// yamlDocument is the YAML form of a map:
//
//	name: example
//	instructions: LLR
//	transitions:
//	  - {from: AAA, left: BBB, right: BBB}
type yamlDocument struct {
	Name         string              `yaml:"name"`
	Instructions string              `yaml:"instructions"`
	Transitions  []domain.Transition `yaml:"transitions"`
}

// ParseYAML decodes the YAML map format.
func (p *Parser) ParseYAML(data []byte) (*domain.Map, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml map: %w", err)
	}

	seq, err := domain.ParseInstructions(doc.Instructions)
	if err != nil {
		return nil, fmt.Errorf("instructions: %w", err)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("instructions: %w", domain.ErrEmptyInstructionSequence)
	}

	for i, t := range doc.Transitions {
		if t.From == "" || t.Left == "" || t.Right == "" {
			return nil, fmt.Errorf("transitions[%d]: from, left and right are required", i)
		}
	}

	return &domain.Map{
		Name:         doc.Name,
		Instructions: seq,
		Transitions:  doc.Transitions,
	}, nil
}

// MarshalYAML encodes m in the YAML map format.
func MarshalYAML(m *domain.Map) ([]byte, error) {
	return yaml.Marshal(yamlDocument{
		Name:         m.Name,
		Instructions: domain.FormatInstructions(m.Instructions),
		Transitions:  m.Transitions,
	})
}
