// Package evolution resolves where a species sits in its evolution chain and
// what it can evolve into next.
package evolution

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
)

// VarietySource looks up species documents, used to detect variant families
type VarietySource interface {
	GetSpeciesDetails(ctx context.Context, name string) (*dex.Species, error)
}

// Branch is one evolution option out of a node. Expanded variant families
// produce one branch per variety.
type Branch struct {
	// TargetSpecies is the concrete record identifier, a variety name when expanded
	TargetSpecies string
	// Species is the chain species of the child node
	Species      string
	Conditions   []dex.EvolutionCondition
	VariantLabel string
	VariantGroup string
}

// Resolution is the outcome of locating a species in a chain
type Resolution struct {
	ChainID int
	Target  string
	Current *dex.EvolutionNode
	// FellBack is set when the target was not in the chain and Current is the root
	FellBack bool
	Branches []Branch
}

// Config contains configuration for the resolver.
type Config struct {
	Varieties VarietySource
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Varieties == nil {
		vb.RequiredField("Varieties")
	}
	return vb.Build()
}

// Resolver expands evolution branches
type Resolver struct {
	varieties VarietySource
}

// New creates a resolver with the given configuration.
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{varieties: cfg.Varieties}, nil
}

// Walk visits nodes depth first in source order. Returning false from visit
// stops the walk. Depth counts edges from root.
func Walk(root *dex.EvolutionNode, visit func(node *dex.EvolutionNode, depth int) bool) {
	if root == nil {
		return
	}

	type frame struct {
		node  *dex.EvolutionNode
		depth int
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(top.node, top.depth) {
			return
		}
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			if child := top.node.Children[i]; child != nil {
				stack = append(stack, frame{node: child, depth: top.depth + 1})
			}
		}
	}
}

// Locate returns the first node whose species matches name, or nil. An
// absent species is not an error.
func Locate(root *dex.EvolutionNode, name string) *dex.EvolutionNode {
	target := dex.NormalizeName(name)
	if target == "" {
		return nil
	}

	var found *dex.EvolutionNode
	Walk(root, func(node *dex.EvolutionNode, _ int) bool {
		if node.Species == target {
			found = node
			return false
		}
		return true
	})
	return found
}

// ExpandBranch lists the evolutions out of node in source order. A child
// whose species has several varieties is replaced by one branch per variety,
// each carrying the child's conditions. A child the catalog has no species
// document for is listed unexpanded; any other lookup failure is returned.
// node is not modified.
func (r *Resolver) ExpandBranch(ctx context.Context, node *dex.EvolutionNode) ([]Branch, error) {
	if node == nil {
		return nil, nil
	}

	branches := make([]Branch, 0, len(node.Children))
	for _, child := range node.Children {
		if child == nil {
			continue
		}

		species, err := r.varieties.GetSpeciesDetails(ctx, child.Species)
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to look up varieties of %s", child.Species)
		}
		if err != nil {
			slog.WarnContext(ctx, "No species document, listing branch unexpanded",
				"species", child.Species,
				"error", err)
		}
		if err != nil || species == nil || !species.HasVariants() {
			branches = append(branches, Branch{
				TargetSpecies: child.Species,
				Species:       child.Species,
				Conditions:    child.Conditions,
			})
			continue
		}

		for _, variety := range species.Varieties {
			branches = append(branches, Branch{
				TargetSpecies: variety.Name,
				Species:       child.Species,
				Conditions:    child.Conditions,
				VariantLabel:  dex.VariantLabel(child.Species, variety.Name),
				VariantGroup:  child.Species,
			})
		}
	}
	return branches, nil
}

// Resolve locates target in chain and expands its next evolutions. When the
// target is absent the chain root is used and FellBack is set. Children that
// expanded into variant families get their VariantGroup set on chain, which
// must therefore not be shared between concurrent calls.
func (r *Resolver) Resolve(ctx context.Context, chain *dex.EvolutionChain, target string) (*Resolution, error) {
	if chain == nil || chain.Root == nil {
		return nil, errors.InvalidArgument("evolution chain is required")
	}

	resolution := &Resolution{
		ChainID: chain.ID,
		Target:  dex.NormalizeName(target),
		Current: Locate(chain.Root, target),
	}
	if resolution.Current == nil {
		slog.DebugContext(ctx, "Species not in chain, using root",
			"target", target,
			"chain_id", chain.ID,
			"root", chain.Root.Species)
		resolution.Current = chain.Root
		resolution.FellBack = true
	}

	branches, err := r.ExpandBranch(ctx, resolution.Current)
	if err != nil {
		return nil, err
	}
	resolution.Branches = branches

	groups := make(map[string]bool)
	for _, b := range branches {
		if b.VariantGroup != "" {
			groups[b.Species] = true
		}
	}
	for _, child := range resolution.Current.Children {
		if child != nil && groups[child.Species] {
			child.VariantGroup = child.Species
		}
	}
	return resolution, nil
}

// Describe renders a resolution as one line: the branches joined with " / ",
// or the current species marked as its final stage.
func Describe(resolution *Resolution) string {
	if resolution == nil || resolution.Current == nil {
		return dex.Placeholder
	}
	if len(resolution.Branches) == 0 {
		return dex.DisplayName(resolution.Current.Species) + " (final stage)"
	}

	parts := make([]string, 0, len(resolution.Branches))
	for _, b := range resolution.Branches {
		parts = append(parts, BranchText(b))
	}
	return strings.Join(parts, " / ")
}

// BranchText renders one branch, e.g. "Raichu (Alola) (Thunder Stone)"
func BranchText(b Branch) string {
	name := dex.DisplayName(b.Species)
	if b.VariantLabel != "" {
		name = dex.FormName(b.Species, b.TargetSpecies)
	}
	return name + " (" + ConditionText(b.Conditions) + ")"
}
