package builders

import (
	"github.com/KirkDiggler/dex-api/internal/entities/dex"
)

// TypeRelationBuilder builds defending type relation tables
type TypeRelationBuilder struct {
	relation *dex.TypeRelation
}

// NewTypeRelationBuilder creates an empty relation table for a defending type
func NewTypeRelationBuilder(defender string) *TypeRelationBuilder {
	return &TypeRelationBuilder{relation: &dex.TypeRelation{Type: defender}}
}

// WeakTo adds attackers that deal double damage
func (b *TypeRelationBuilder) WeakTo(attackers ...string) *TypeRelationBuilder {
	b.relation.DoubleDamageFrom = append(b.relation.DoubleDamageFrom, attackers...)
	return b
}

// Resists adds attackers that deal half damage
func (b *TypeRelationBuilder) Resists(attackers ...string) *TypeRelationBuilder {
	b.relation.HalfDamageFrom = append(b.relation.HalfDamageFrom, attackers...)
	return b
}

// ImmuneTo adds attackers that deal no damage
func (b *TypeRelationBuilder) ImmuneTo(attackers ...string) *TypeRelationBuilder {
	b.relation.NoDamageFrom = append(b.relation.NoDamageFrom, attackers...)
	return b
}

// Build returns the relation
func (b *TypeRelationBuilder) Build() *dex.TypeRelation {
	return b.relation
}
