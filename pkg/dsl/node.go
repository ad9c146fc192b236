package dsl

import "github.com/aretw0/wasteland/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node's edges.
type NodeBuilder struct {
	t domain.Transition
}

// Left sets the node taken on an 'L' instruction.
func (n *NodeBuilder) Left(target string) *NodeBuilder {
	n.t.Left = target
	return n
}

// Right sets the node taken on an 'R' instruction.
func (n *NodeBuilder) Right(target string) *NodeBuilder {
	n.t.Right = target
	return n
}

// Go sets both edges at once.
func (n *NodeBuilder) Go(left, right string) *NodeBuilder {
	n.t.Left = left
	n.t.Right = right
	return n
}

// Sink makes both edges loop back to the node itself.
func (n *NodeBuilder) Sink() *NodeBuilder {
	return n.Go(n.t.From, n.t.From)
}

// Build returns the underlying domain.Transition.
func (n *NodeBuilder) Build() domain.Transition {
	return n.t
}
