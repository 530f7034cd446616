// Package scarb reads resolved workspace metadata from the Scarb package
// manager.
//
// The model is intentionally narrow: it keeps only the fields the ejector
// needs (workspace members, package identity, source roots, and the resolved
// dependency graph). Everything else Scarb reports (features, profiles,
// build scripts, version requirements) is ignored on decode.
package scarb

import (
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
)

// FormatVersion is the only metadata format version this package understands.
const FormatVersion = 1

// PackageID uniquely identifies a resolved package within one metadata
// snapshot. IDs are opaque strings minted by Scarb (name, version, and source
// combined) and are only ever compared for equality.
type PackageID string

// Metadata is the decoded output of `scarb metadata`.
type Metadata struct {
	Version        int               `json:"version"`
	Workspace      WorkspaceMetadata `json:"workspace"`
	Packages       []PackageMetadata `json:"packages"`
	Resolve        ResolveMetadata   `json:"resolve"`
	CurrentProfile string            `json:"current_profile"`
}

// WorkspaceMetadata describes the workspace the metadata was collected for.
type WorkspaceMetadata struct {
	Root         string      `json:"root"`
	ManifestPath string      `json:"manifest_path"`
	Members      []PackageID `json:"members"`
}

// PackageMetadata is one resolved package. The ejector reads its identity,
// its targets (for source roots), and the crate-settings inputs (edition,
// version, experimental features).
type PackageMetadata struct {
	ID                   PackageID        `json:"id"`
	Name                 string           `json:"name"`
	Version              string           `json:"version"`
	Edition              string           `json:"edition,omitempty"`
	Root                 string           `json:"root"`
	ManifestPath         string           `json:"manifest_path"`
	Targets              []TargetMetadata `json:"targets"`
	ExperimentalFeatures []string         `json:"experimental_features"`
}

// TargetMetadata is a single buildable target of a package.
type TargetMetadata struct {
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	SourcePath string `json:"source_path"`
}

// ResolveMetadata is the resolved dependency graph: one node per package id
// with its direct-dependency ids in declaration order.
type ResolveMetadata struct {
	Nodes []ResolveNode `json:"nodes"`
}

// ResolveNode lists the direct dependencies of a single package.
type ResolveNode struct {
	ID           PackageID   `json:"id"`
	Dependencies []PackageID `json:"dependencies"`
}

// Semver parses the package version.
func (p *PackageMetadata) Semver() (*semver.Version, error) {
	return semver.NewVersion(p.Version)
}

// HasExperimentalFeature reports whether the package opted into the named
// experimental compiler feature.
func (p *PackageMetadata) HasExperimentalFeature(name string) bool {
	return slices.Contains(p.ExperimentalFeatures, name)
}

// SourceRoots returns the distinct directories containing the package's
// target sources, in target declaration order. A package with no targets has
// no source roots.
func (p *PackageMetadata) SourceRoots() []string {
	var roots []string
	seen := make(map[string]bool)
	for _, t := range p.Targets {
		if t.SourcePath == "" {
			continue
		}
		dir := filepath.Dir(t.SourcePath)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		roots = append(roots, dir)
	}
	return roots
}
