/*
Package wasteland is a deterministic walker for left/right node networks driven by a cyclic instruction stream.

A map document names, for every node, the node reached by going left and the node
reached by going right, plus a sequence of L/R instructions that repeats forever.
Wasteland answers two questions about such a map:

  - Walk: how many steps it takes to go from one designated node to another.
  - Synchronize: when every node matching a start pattern walks independently,
    after how many steps they all stand on a goal node at the same time.

# Concept

The engine separates the network (an immutable transition table, built once) from
the walk state (a cursor into the instruction sequence plus the current node). Every
walk owns its own cursor, so independent walks never interfere and may run in parallel.

Synchronization combines the per-walk step counts by least common multiple. This is
only sound when each walk reaches a goal node periodically, exactly once per its own
step count. Puzzle-shaped inputs have that property; arbitrary graphs do not, and the
engine does not check it.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/wasteland"
		"github.com/aretw0/wasteland/pkg/domain"
	)

	func main() {
		eng, err := wasteland.New("input.txt", wasteland.WithStepLimit(10_000_000))
		if err != nil {
			log.Fatal(err)
		}

		report, err := eng.Solve(context.Background(), domain.DefaultQuery())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(report.Walk.Steps, report.Sync.Steps)
	}
*/
package wasteland
