package grammex

import "github.com/cnf/structhash"

// fingerprintNode is the structural shape of one prepared element, hashed by
// id rather than by pointer so that two graphs with the same topology hash
// identically regardless of allocation order.
type fingerprintNode struct {
	ID     int
	Kind   ElementKind
	Name   string
	Config string
	Refs   []fingerprintRef
}

// fingerprintConfig extracts the variant-specific payload that distinguishes
// two otherwise-identical elements of the same kind: a Word's literal, a
// Token's source pattern. Group, Rule, Procedure and Condition carry no such
// payload of their own - their shape is fully captured by Kind plus Refs.
func fingerprintConfig(el Element) string {
	switch e := el.(type) {
	case *wordElement:
		return e.literal
	case *tokenElement:
		return e.source
	default:
		return ""
	}
}

type fingerprintRef struct {
	ChildID     int
	Cardinality Cardinality
	Name        string
}

// Fingerprint hashes the prepared element graph's shape into a stable
// string: kind, name, variant payload (Word literal, Token pattern),
// cardinalities and child ids, not pointers. A consumer
// that caches something keyed on grammar identity across process restarts
// (the grammar is explicitly mutable between parse runs - rules may be
// added or replaced) can compare fingerprints across two Prepare calls to
// tell whether the shape actually changed, without a deep structural diff.
//
// Grounded on the earley parser's structhash.Hash(anonymousStruct, 1) use
// for LR item hashing, generalized from one item to a whole prepared graph.
func (g *Grammar) Fingerprint() (string, error) {
	if !g.prepared {
		if err := g.Prepare(); err != nil {
			return "", err
		}
	}

	nodes := make([]fingerprintNode, 0, len(g.byID))
	for _, el := range g.byID {
		n := fingerprintNode{ID: el.ID(), Kind: el.Kind(), Name: el.Name(), Config: fingerprintConfig(el)}
		for _, ref := range el.refs() {
			if ref == nil || ref.element == nil {
				continue
			}
			n.Refs = append(n.Refs, fingerprintRef{
				ChildID:     ref.element.ID(),
				Cardinality: ref.cardinality,
				Name:        ref.name,
			})
		}
		nodes = append(nodes, n)
	}

	hash, err := structhash.Hash(struct {
		Axiom int
		Skip  bool
		Nodes []fingerprintNode
	}{
		Axiom: g.axiom.ID(),
		Skip:  g.skip != nil,
		Nodes: nodes,
	}, 1)
	if err != nil {
		return "", errorf(kindInternal, "fingerprint hash failed: %v", err)
	}
	return hash, nil
}
