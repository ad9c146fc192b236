package runtime_test

import (
	"testing"

	"github.com/aretw0/wasteland/internal/compiler"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/stretchr/testify/require"
)

const scenarioOne = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

const scenarioTwo = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const scenarioGhosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

func mustParse(t *testing.T, input string) *domain.Map {
	t.Helper()
	m, err := compiler.NewParser().ParseString(input)
	require.NoError(t, err)
	return m
}
