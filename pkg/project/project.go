// Package project projects a resolved Scarb package graph into the flat
// cairo_project.toml descriptor consumed by the Cairo compiler toolchain.
//
// The descriptor has two parts: a [crate_roots] table mapping crate names to
// source-root paths, and a [config.global] table carrying the edition and
// related crate settings. Projection walks the dependency closure of one
// root package; serialization renders paths relative to the descriptor's
// own location. Both steps are pure until the final write, and the write is
// atomic: a failed run never leaves partial output behind.
package project

// DefaultEdition is the language edition applied when the root package does
// not declare one.
const DefaultEdition = "2023_01"

// CoreCrateName is the crate provided by the compiler itself. It never
// appears in a descriptor and is skipped during projection.
const CoreCrateName = "core"

// CrateEntry maps one crate name to its source roots. Source roots are
// absolute paths, deduplicated, in declaration order; relativization happens
// at serialization time because it depends on where the descriptor lands.
type CrateEntry struct {
	Name        string
	SourceRoots []string
}

// DependencySettings configures a single dependency of the global crate
// settings. The discriminator is the package manager's id for the package,
// letting the compiler distinguish same-named crates from different sources.
type DependencySettings struct {
	Discriminator string `toml:"discriminator,omitempty"`
}

// ExperimentalFeatures carries the compiler feature gates a package opted
// into.
type ExperimentalFeatures struct {
	NegativeImpls bool `toml:"negative_impls"`
	Coupons       bool `toml:"coupons"`
}

// CrateSettings is the [config.global] table of the descriptor.
type CrateSettings struct {
	Edition              string                        `toml:"edition"`
	Version              string                        `toml:"version,omitempty"`
	Dependencies         map[string]DependencySettings `toml:"dependencies,omitempty"`
	ExperimentalFeatures ExperimentalFeatures          `toml:"experimental_features"`
}

// Config is the complete descriptor: the ordered crate-roots collection plus
// the global crate settings. It is created once per run, serialized, and
// discarded; nothing mutates it after projection.
type Config struct {
	CrateRoots []CrateEntry
	Global     CrateSettings
}
