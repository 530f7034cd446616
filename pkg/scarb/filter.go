package scarb

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// PackagesFilter selects a single workspace member from metadata.
//
// Spec syntax is "name" or "name@version"; an empty spec selects the
// workspace's default member.
type PackagesFilter struct {
	Spec string
}

// MatchOne resolves the filter against the workspace members.
// Exactly one package must match.
func (f PackagesFilter) MatchOne(m *Metadata) (*PackageMetadata, error) {
	if f.Spec == "" {
		return m.DefaultMember()
	}

	name, version, hasVersion := strings.Cut(f.Spec, "@")
	var target *semver.Version
	if hasVersion {
		v, err := semver.NewVersion(version)
		if err != nil {
			return nil, fmt.Errorf("invalid package spec %q: %w", f.Spec, err)
		}
		target = v
	}

	var matches []*PackageMetadata
	for _, id := range m.Workspace.Members {
		pkg, ok := m.packageByID(id)
		if !ok || pkg.Name != name {
			continue
		}
		if target != nil {
			v, err := pkg.Semver()
			if err != nil || !v.Equal(target) {
				continue
			}
		}
		matches = append(matches, pkg)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("package %q not found in workspace", f.Spec)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, pkg := range matches {
			ids[i] = string(pkg.ID)
		}
		return nil, fmt.Errorf("package spec %q is ambiguous: %s", f.Spec, strings.Join(ids, ", "))
	}
}

// DefaultMember returns the workspace's sole member. Workspaces with more
// than one member have no default here; the caller must name a package.
func (m *Metadata) DefaultMember() (*PackageMetadata, error) {
	switch len(m.Workspace.Members) {
	case 0:
		return nil, fmt.Errorf("workspace has no members")
	case 1:
		pkg, ok := m.packageByID(m.Workspace.Members[0])
		if !ok {
			return nil, fmt.Errorf("workspace member %s missing from package list", m.Workspace.Members[0])
		}
		return pkg, nil
	default:
		return nil, fmt.Errorf("workspace has %d members; select one with --package", len(m.Workspace.Members))
	}
}

func (m *Metadata) packageByID(id PackageID) (*PackageMetadata, bool) {
	for i := range m.Packages {
		if m.Packages[i].ID == id {
			return &m.Packages[i], true
		}
	}
	return nil, false
}
