// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/dex-api/internal/entities/dex"
)

// ChainBuilder provides a fluent interface for building evolution trees
type ChainBuilder struct {
	chain *dex.EvolutionChain
	nodes map[string]*dex.EvolutionNode
}

// NewChainBuilder starts a chain rooted at the given species
func NewChainBuilder(root string) *ChainBuilder {
	node := &dex.EvolutionNode{Species: root}
	return &ChainBuilder{
		chain: &dex.EvolutionChain{ID: 1, Root: node},
		nodes: map[string]*dex.EvolutionNode{root: node},
	}
}

// WithID sets the chain id
func (b *ChainBuilder) WithID(id int) *ChainBuilder {
	b.chain.ID = id
	return b
}

// Evolve adds child under parent. The parent must already be in the chain.
func (b *ChainBuilder) Evolve(parent, child string, conditions ...dex.EvolutionCondition) *ChainBuilder {
	p, ok := b.nodes[parent]
	if !ok {
		panic("builders: unknown parent species " + parent)
	}
	node := &dex.EvolutionNode{Species: child, Conditions: conditions}
	p.Children = append(p.Children, node)
	b.nodes[child] = node
	return b
}

// Baby marks a species as a baby stage
func (b *ChainBuilder) Baby(species string) *ChainBuilder {
	b.nodes[species].IsBaby = true
	return b
}

// Build returns the built chain
func (b *ChainBuilder) Build() *dex.EvolutionChain {
	return b.chain
}

// LevelUp is a plain level threshold condition
func LevelUp(level int) dex.EvolutionCondition {
	return dex.EvolutionCondition{Trigger: dex.TriggerLevelUp, MinLevel: IntPtr(level)}
}

// UseItem is an item condition
func UseItem(item string) dex.EvolutionCondition {
	return dex.EvolutionCondition{Trigger: dex.TriggerUseItem, Item: item}
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
