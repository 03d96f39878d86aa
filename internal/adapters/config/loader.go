// Package config loads the plugkit.yaml project file.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only project file schema version understood.
const supportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger   ports.Logger
	Walker   ports.Walker
	Resolver ports.InputResolver
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger, walker ports.Walker, resolver ports.InputResolver) *Loader {
	return &Loader{
		Logger:   log,
		Walker:   walker,
		Resolver: resolver,
	}
}

// Load reads the project file at path. Dependency packages are read from
// the plugkit.yaml in each listed directory; only their targets are used.
func (l *Loader) Load(path string) (*domain.Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	plugfile, err := readPlugfile(absPath)
	if err != nil {
		return nil, err
	}

	pkgDir := filepath.Dir(absPath)
	pkg, err := l.loadPackage(absPath, plugfile, map[string]bool{})
	if err != nil {
		return nil, err
	}

	plugins, err := l.buildPlugins(pkgDir, plugfile.Plugins)
	if err != nil {
		return nil, err
	}

	if err := validateTargets(pkg, plugins); err != nil {
		return nil, err
	}

	project := &domain.Project{
		Path:          absPath,
		Package:       pkg,
		WorkDirectory: resolvePath(pkgDir, plugfile.WorkDirectory),
		BuildTool:     plugfile.Toolchain.BuildTool,
		Tools:         make(map[string]string, len(plugfile.Tools)),
		Plugins:       plugins,
	}
	if plugfile.WorkDirectory == "" {
		project.WorkDirectory = filepath.Join(pkgDir, domain.StateDirName, domain.DefaultWorkDirName)
	}
	if project.BuildTool == "" {
		project.BuildTool = domain.DefaultBuildTool
	}
	for name, toolPath := range plugfile.Tools {
		project.Tools[name] = resolvePath(pkgDir, toolPath)
	}

	return project, nil
}

func readPlugfile(path string) (*Plugfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var plugfile Plugfile
	if err := yaml.Unmarshal(data, &plugfile); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if plugfile.Version != "" && plugfile.Version != supportedVersion {
		err := zerr.Wrap(domain.ErrUnsupportedVersion, "cannot load project file")
		return nil, zerr.With(zerr.With(err, "version", plugfile.Version), "path", path)
	}

	return &plugfile, nil
}

// loadPackage builds the package declared by plugfile and, recursively, the
// packages it depends on. loading holds the files on the current chain.
func (l *Loader) loadPackage(path string, plugfile *Plugfile, loading map[string]bool) (*domain.Package, error) {
	if loading[path] {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "package dependency cycle"), "path", path)
	}
	loading[path] = true
	defer delete(loading, path)

	pkgDir := filepath.Dir(path)
	name := plugfile.Package.Name
	if name == "" {
		name = filepath.Base(pkgDir)
	}
	pkg := domain.NewPackage(name, pkgDir)

	for _, targetName := range sortedKeys(plugfile.Targets) {
		target, err := l.buildTarget(pkgDir, targetName, plugfile.Targets[targetName])
		if err != nil {
			return nil, err
		}
		if err := pkg.AddTarget(target); err != nil {
			return nil, err
		}
	}

	for _, depDir := range plugfile.Package.Dependencies {
		depPath := filepath.Join(resolvePath(pkgDir, depDir), domain.DefaultConfigFile)
		depFile, err := readPlugfile(depPath)
		if err != nil {
			return nil, zerr.With(err, "package", name)
		}
		dep, err := l.loadPackage(depPath, depFile, loading)
		if err != nil {
			return nil, err
		}
		pkg.Dependencies = append(pkg.Dependencies, dep)
	}

	return pkg, nil
}

func (l *Loader) buildTarget(pkgDir, name string, dto *TargetDTO) (*domain.Target, error) {
	if dto == nil {
		dto = &TargetDTO{}
	}

	kind := domain.TargetKind(dto.Kind)
	switch kind {
	case "":
		kind = domain.TargetLibrary
	case domain.TargetExecutable, domain.TargetLibrary, domain.TargetTest, domain.TargetPlugin:
	default:
		err := zerr.Wrap(domain.ErrConfigInvalid, "unknown target kind")
		return nil, zerr.With(zerr.With(err, "target", name), "kind", dto.Kind)
	}

	dir := filepath.Join(pkgDir, "Sources", name)
	if dto.Path != "" {
		dir = resolvePath(pkgDir, dto.Path)
	}

	sources, err := l.targetSources(dir, dto.Sources)
	if err != nil {
		return nil, zerr.With(err, "target", name)
	}

	return &domain.Target{
		Name:         name,
		Kind:         kind,
		Directory:    dir,
		SourceFiles:  sources,
		Dependencies: dto.DependsOn,
		Plugins:      dto.Plugins,
	}, nil
}

// targetSources resolves the declared source patterns, or lists every file
// below dir when none are declared.
func (l *Loader) targetSources(dir string, patterns []string) ([]string, error) {
	if len(patterns) > 0 {
		return l.Resolver.ResolveInputs(patterns, dir)
	}

	if _, err := os.Stat(dir); err != nil {
		l.Logger.Warn("target directory " + dir + " does not exist")
		return nil, nil
	}

	var sources []string
	for file := range l.Walker.WalkFiles(dir, nil) {
		sources = append(sources, file)
	}
	return sources, nil
}

func (l *Loader) buildPlugins(pkgDir string, dtos map[string]*PluginDTO) (map[string]domain.PluginSpec, error) {
	plugins := make(map[string]domain.PluginSpec, len(dtos))
	for _, name := range sortedKeys(dtos) {
		dto := dtos[name]
		if dto == nil {
			dto = &PluginDTO{}
		}

		spec := domain.PluginSpec{
			Name:            name,
			Uses:            dto.Uses,
			SourceDirectory: filepath.Join(pkgDir, "Plugins", name),
		}
		if spec.Uses == "" {
			spec.Uses = name
		}
		if dto.Source != "" {
			spec.SourceDirectory = resolvePath(pkgDir, dto.Source)
		}

		for i, cmdDTO := range dto.Commands {
			cmd, err := buildCommandSpec(cmdDTO)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "plugin", name), "command_index", i)
			}
			spec.Commands = append(spec.Commands, cmd)
		}

		plugins[name] = spec
	}
	return plugins, nil
}

func buildCommandSpec(dto CommandDTO) (domain.CommandSpec, error) {
	kind := domain.CommandKind(dto.Kind)
	switch kind {
	case "":
		kind = domain.KindBuild
	case domain.KindBuild, domain.KindPrebuild:
	default:
		return domain.CommandSpec{}, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown command kind"), "kind", dto.Kind)
	}

	exe, err := buildExecutable(dto.Executable)
	if err != nil {
		return domain.CommandSpec{}, err
	}

	if kind == domain.KindPrebuild && dto.OutputDirectory == "" {
		return domain.CommandSpec{}, zerr.Wrap(domain.ErrConfigInvalid, "prebuild command needs an outputDirectory")
	}

	return domain.CommandSpec{
		Kind:            kind,
		DisplayName:     dto.DisplayName,
		Executable:      exe,
		Arguments:       dto.Arguments,
		Environment:     dto.Environment,
		Inputs:          dto.Inputs,
		Outputs:         dto.Outputs,
		OutputDirectory: dto.OutputDirectory,
	}, nil
}

func buildExecutable(dto ExecutableDTO) (domain.Executable, error) {
	var found []domain.Executable
	if dto.Target != "" {
		found = append(found, domain.TargetInPackage{Name: dto.Target})
	}
	if dto.File != "" {
		found = append(found, domain.File{Path: dto.File})
	}
	if dto.Command != "" {
		found = append(found, domain.Command{Name: dto.Command})
	}
	if dto.Script != "" {
		found = append(found, domain.Script{Path: dto.Script})
	}
	if dto.Toolchain != "" {
		found = append(found, domain.ToolchainCommand{Name: dto.Toolchain})
	}

	if len(found) != 1 {
		err := zerr.Wrap(domain.ErrConfigInvalid, "executable must name exactly one of target, file, command, script or toolchain")
		return nil, zerr.With(err, "count", len(found))
	}
	return found[0], nil
}

// validateTargets checks that every dependency and plugin a target names exists.
func validateTargets(pkg *domain.Package, plugins map[string]domain.PluginSpec) error {
	for target := range pkg.Targets() {
		for _, dep := range target.Dependencies {
			if _, ok := pkg.Target(dep); !ok {
				err := zerr.Wrap(domain.ErrConfigInvalid, "missing target dependency")
				return zerr.With(zerr.With(err, "target", target.Name), "missing_dependency", dep)
			}
		}
		for _, plugin := range target.Plugins {
			if _, ok := plugins[plugin]; !ok {
				err := zerr.Wrap(domain.ErrPluginNotFound, "target applies an undeclared plugin")
				return zerr.With(zerr.With(err, "target", target.Name), "plugin", plugin)
			}
		}
	}

	for target := range pkg.Targets() {
		if _, err := pkg.TransitiveDependencies(target.Name); err != nil {
			return err
		}
	}
	return nil
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
