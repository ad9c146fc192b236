package wasteland_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/wasteland"
	"github.com/aretw0/wasteland/pkg/adapters/memory"
	"github.com/aretw0/wasteland/pkg/domain"
)

// ExampleNew_memory demonstrates how to use the Engine with an in-memory map definition.
func ExampleNew_memory() {
	loader, err := memory.NewFromTransitions("LLR",
		domain.Transition{From: "AAA", Left: "BBB", Right: "BBB"},
		domain.Transition{From: "BBB", Left: "AAA", Right: "ZZZ"},
		domain.Transition{From: "ZZZ", Left: "ZZZ", Right: "ZZZ"},
	)
	if err != nil {
		log.Fatal(err)
	}

	eng, err := wasteland.New("", wasteland.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	steps, err := eng.Walk(context.Background(), "AAA", "ZZZ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(steps)
	// Output: 6
}

// ExampleEngine_Synchronize shows the step at which all walks from nodes
// ending in "A" stand on nodes ending in "Z" together.
func ExampleEngine_Synchronize() {
	eng, err := wasteland.New("", wasteland.WithLoader(memory.NewLoader(ghostMap)))
	if err != nil {
		log.Fatal(err)
	}

	steps, err := eng.Synchronize(context.Background(), "A", "Z")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(steps)
	// Output: 6
}
