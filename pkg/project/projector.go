package project

import (
	"unicode"

	"github.com/software-mansion-labs/scarb-eject/pkg/scarb"
)

// Options tune the projection.
type Options struct {
	// NoDeps leaves [config.global.dependencies] empty. Crate roots are
	// still the full closure; only the per-crate dependency settings are
	// suppressed.
	NoDeps bool
}

// Project walks the package graph breadth-first from root and builds the
// descriptor for its dependency closure. Each reachable package becomes one
// crate entry; the root package contributes the global crate settings.
//
// The walk visits every package at most once, so cycles and diamond shapes
// terminate and emit single entries. The builtin core crate is skipped: the
// compiler supplies it. Projection reads the graph and nothing else.
func Project(g *scarb.PackageGraph, root scarb.PackageID, opts Options) (*Config, error) {
	rootPkg, ok := g.Package(root)
	if !ok {
		return nil, NewError(ErrCodeUnknownPackage, "package %s not found in metadata", root)
	}

	visited := map[scarb.PackageID]bool{root: true}
	queue := []scarb.PackageID{root}
	claimed := make(map[string]scarb.PackageID)
	var entries []CrateEntry
	deps := make(map[string]DependencySettings)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		pkg, ok := g.Package(id)
		if !ok {
			return nil, NewError(ErrCodeUnknownPackage, "dependency %s not found in metadata", id)
		}
		if pkg.Name == CoreCrateName {
			continue
		}
		if !isValidCrateName(pkg.Name) {
			return nil, NewError(ErrCodeInvalidCrateName, "package %s has a name that is not a valid crate identifier: %q", id, pkg.Name)
		}
		if prev, taken := claimed[pkg.Name]; taken {
			return nil, NewError(ErrCodeDuplicateCrateName, "crate name %q is claimed by both %s and %s", pkg.Name, prev, id)
		}
		claimed[pkg.Name] = id

		roots := pkg.SourceRoots()
		if len(roots) == 0 {
			return nil, NewError(ErrCodeMissingSourceRoot, "package %s declares no source roots", pkg.Name)
		}
		entries = append(entries, CrateEntry{Name: pkg.Name, SourceRoots: roots})
		deps[pkg.Name] = DependencySettings{Discriminator: string(id)}

		for _, dep := range g.Dependencies(id) {
			if !visited[dep] {
				visited[dep] = true
				queue = append(queue, dep)
			}
		}
	}

	if opts.NoDeps {
		deps = nil
	}

	return &Config{
		CrateRoots: entries,
		Global:     globalSettings(rootPkg, deps),
	}, nil
}

// globalSettings derives [config.global] from the root package.
func globalSettings(pkg *scarb.PackageMetadata, deps map[string]DependencySettings) CrateSettings {
	edition := pkg.Edition
	if edition == "" {
		edition = DefaultEdition
	}
	version := pkg.Version
	if v, err := pkg.Semver(); err == nil {
		version = v.String()
	}
	return CrateSettings{
		Edition:      edition,
		Version:      version,
		Dependencies: deps,
		ExperimentalFeatures: ExperimentalFeatures{
			NegativeImpls: pkg.HasExperimentalFeature("negative_impls"),
			Coupons:       pkg.HasExperimentalFeature("coupons"),
		},
	}
}

// isValidCrateName reports whether name is usable as a crate identifier:
// a letter or underscore followed by letters, digits, or underscores.
func isValidCrateName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
