/*
Package domain contains the core domain models for the Wasteland walker.

It defines the fundamental entities of a left/right node network, such as
Instructions, Transitions, the parsed Map, and the Walk state. This package is
kept pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Instruction: A single Left or Right choice taken at one step.
  - Transition: A node's two outgoing edges (left and right targets).
  - Map: The parsed network document (instruction sequence plus transitions).
  - Walk: The runtime snapshot of a single walk (start, current node, steps).
  - Query / Report: What the caller asks for and what the engine answers.
*/
package domain
