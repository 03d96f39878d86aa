package domain

import (
	"iter"
	"slices"
	"sort"

	"go.trai.ch/zerr"
)

// TargetKind classifies a package target.
type TargetKind string

const (
	// TargetExecutable produces a runnable program.
	TargetExecutable TargetKind = "executable"
	// TargetLibrary produces a library linked into other targets.
	TargetLibrary TargetKind = "library"
	// TargetTest holds tests.
	TargetTest TargetKind = "test"
	// TargetPlugin holds a build tool plugin.
	TargetPlugin TargetKind = "plugin"
)

// Target is a named build unit of a package.
type Target struct {
	Name         string
	Kind         TargetKind
	Directory    string
	SourceFiles  []string
	Dependencies []string
	Plugins      []string
}

// Package is the host's view of a package and the packages it depends on.
type Package struct {
	Name         string
	Directory    string
	Dependencies []*Package

	targets map[string]*Target
}

// NewPackage creates an empty package rooted at dir.
func NewPackage(name, dir string) *Package {
	return &Package{
		Name:      name,
		Directory: dir,
		targets:   make(map[string]*Target),
	}
}

// AddTarget adds t to the package.
func (p *Package) AddTarget(t *Target) error {
	if _, exists := p.targets[t.Name]; exists {
		return zerr.With(zerr.Wrap(ErrDuplicateTarget, "failed to add target"), "target", t.Name)
	}
	p.targets[t.Name] = t
	return nil
}

// Targets yields the package's own targets in name order.
func (p *Package) Targets() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		names := make([]string, 0, len(p.targets))
		for name := range p.targets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if !yield(p.targets[name]) {
				return
			}
		}
	}
}

// Target finds a target by name in this package, then in its dependency
// packages depth first.
func (p *Package) Target(name string) (*Target, bool) {
	seen := make(map[*Package]bool)
	var find func(pkg *Package) *Target
	find = func(pkg *Package) *Target {
		if seen[pkg] {
			return nil
		}
		seen[pkg] = true
		if t, ok := pkg.targets[name]; ok {
			return t
		}
		for _, dep := range pkg.Dependencies {
			if t := find(dep); t != nil {
				return t
			}
		}
		return nil
	}
	t := find(p)
	return t, t != nil
}

// TransitiveDependencies returns every target reachable from name through
// target dependencies, dependencies first. The named target is not included
// and each target appears once.
func (p *Package) TransitiveDependencies(name string) ([]*Target, error) {
	root, ok := p.Target(name)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrTargetNotFound, "failed to resolve target"), "target", name)
	}

	state := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string
	var order []*Target

	var visit func(t *Target) error
	visit = func(t *Target) error {
		state[t.Name] = 1
		path = append(path, t.Name)

		for _, depName := range t.Dependencies {
			switch state[depName] {
			case 1:
				return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid target graph"), "cycle", cyclePath(path, depName))
			case 2:
				continue
			}
			dep, ok := p.Target(depName)
			if !ok {
				return zerr.With(zerr.With(zerr.Wrap(ErrTargetNotFound, "missing target dependency"), "target", depName), "dependent", t.Name)
			}
			if err := visit(dep); err != nil {
				return err
			}
			order = append(order, dep)
		}

		state[t.Name] = 2
		path = path[:len(path)-1]
		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}
	return order, nil
}

func cyclePath(path []string, dep string) string {
	start := slices.Index(path, dep)
	if start < 0 {
		start = 0
	}
	out := ""
	for _, name := range path[start:] {
		out += name + " -> "
	}
	return out + dep
}
