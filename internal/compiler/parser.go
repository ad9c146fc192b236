package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aretw0/wasteland/pkg/domain"
)

// maxLineSize bounds a single line (the instruction line can be long).
const maxLineSize = 1 << 20

var recordPattern = regexp.MustCompile(`^([0-9A-Z]+)\s*=\s*\(\s*([0-9A-Z]+)\s*,\s*([0-9A-Z]+)\s*\)$`)

// Parser converts the text map format into a domain.Map:
//
//	LLR
//
//	AAA = (BBB, BBB)
//	BBB = (AAA, ZZZ)
//	ZZZ = (ZZZ, ZZZ)
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a complete document held in memory.
func (p *Parser) Parse(data []byte) (*domain.Map, error) {
	return p.ParseReader(bytes.NewReader(data))
}

// ParseString is Parse for string input.
func (p *Parser) ParseString(s string) (*domain.Map, error) {
	return p.ParseReader(strings.NewReader(s))
}

// ParseReader decodes a document line by line.
// Failures are reported as *domain.ParseError carrying the 1-based line number.
func (p *Parser) ParseReader(r io.Reader) (*domain.Map, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	m := &domain.Map{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case lineNo == 1:
			seq, err := domain.ParseInstructions(line)
			if err != nil {
				return nil, &domain.ParseError{Line: lineNo, Text: line, Reason: "invalid instruction line", Err: err}
			}
			if len(seq) == 0 {
				return nil, &domain.ParseError{Line: lineNo, Reason: "missing instruction line", Err: domain.ErrEmptyInstructionSequence}
			}
			m.Instructions = seq
		case lineNo == 2:
			if line != "" {
				return nil, &domain.ParseError{Line: lineNo, Text: line, Reason: "expected blank line after instructions"}
			}
		case line == "":
			continue
		default:
			t, err := ParseTransition(line)
			if err != nil {
				return nil, &domain.ParseError{Line: lineNo, Text: line, Reason: err.Error()}
			}
			m.Transitions = append(m.Transitions, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	if lineNo == 0 {
		return nil, &domain.ParseError{Line: 1, Reason: "missing instruction line", Err: domain.ErrEmptyInstructionSequence}
	}

	return m, nil
}

// ParseTransition decodes a single "XXX = (YYY, ZZZ)" record.
func ParseTransition(line string) (domain.Transition, error) {
	match := recordPattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return domain.Transition{}, fmt.Errorf("expected record of the form 'XXX = (YYY, ZZZ)'")
	}
	return domain.Transition{From: match[1], Left: match[2], Right: match[3]}, nil
}
