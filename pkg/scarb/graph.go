package scarb

// PackageGraph is an immutable adjacency view over resolved metadata,
// keyed by package id. It is the input contract of the projector: lookups
// only, no mutation, safe to share.
type PackageGraph struct {
	packages map[PackageID]*PackageMetadata
	deps     map[PackageID][]PackageID
}

// NewPackageGraph builds a graph from a package set and an adjacency list.
// The packages slice is copied; later mutation of the arguments does not
// affect the graph.
func NewPackageGraph(packages []PackageMetadata, deps map[PackageID][]PackageID) *PackageGraph {
	g := &PackageGraph{
		packages: make(map[PackageID]*PackageMetadata, len(packages)),
		deps:     make(map[PackageID][]PackageID, len(deps)),
	}
	for i := range packages {
		p := packages[i]
		g.packages[p.ID] = &p
	}
	for id, ds := range deps {
		g.deps[id] = append([]PackageID(nil), ds...)
	}
	return g
}

// Graph materializes the package graph from the metadata's resolve section.
func (m *Metadata) Graph() *PackageGraph {
	deps := make(map[PackageID][]PackageID, len(m.Resolve.Nodes))
	for _, n := range m.Resolve.Nodes {
		deps[n.ID] = n.Dependencies
	}
	return NewPackageGraph(m.Packages, deps)
}

// Package looks up a package by id.
func (g *PackageGraph) Package(id PackageID) (*PackageMetadata, bool) {
	p, ok := g.packages[id]
	return p, ok
}

// Dependencies returns the direct-dependency ids of the given package in
// declaration order. Unknown ids have no dependencies.
func (g *PackageGraph) Dependencies(id PackageID) []PackageID {
	return g.deps[id]
}

// Len returns the number of packages in the graph.
func (g *PackageGraph) Len() int { return len(g.packages) }
