package vercompat

import (
	"fmt"

	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

// NamespaceConfig configures the adapters of one namespace.
type NamespaceConfig struct {
	// Versions gets one adapter unit each. It must not be empty.
	Versions VersionSet
	// TargetUnit is the unit that uses the adapters, "main" if empty.
	TargetUnit string

	name string
}

func newNamespaceConfig(name string) *NamespaceConfig {
	return &NamespaceConfig{name: name}
}

// Name returns the namespace name. The empty name is the default namespace.
func (ns *NamespaceConfig) Name() string { return ns.name }

func (ns *NamespaceConfig) target() string {
	if ns.TargetUnit == "" {
		return vckore.MainUnitName
	}
	return ns.TargetUnit
}

// UnitPrefix returns the common prefix of all unit names of ns, e.g.
// "compatLang" for namespace "lang".
func (ns *NamespaceConfig) UnitPrefix() string {
	return "compat" + Unpunctuate(Capitalize(ns.name))
}

func (ns *NamespaceConfig) APIUnitName() string { return ns.UnitPrefix() + "Api" }

func (ns *NamespaceConfig) AdapterUnitName(version string) string {
	return ns.UnitPrefix() + Unpunctuate(version)
}

func (ns *NamespaceConfig) AdapterTestUnitName(version string) string {
	return "test" + Capitalize(ns.AdapterUnitName(version))
}

type AdaptersConfig struct {
	Namespaces *vckore.Container[*NamespaceConfig]
}

func newAdaptersConfig() *AdaptersConfig {
	return &AdaptersConfig{
		Namespaces: vckore.NewContainer("namespace", newNamespaceConfig),
	}
}

// Namespace registers the namespace name with versions.
func (cfg *AdaptersConfig) Namespace(name string, versions ...string) (*NamespaceConfig, error) {
	return cfg.Namespaces.Register(name, func(ns *NamespaceConfig) {
		ns.Versions.Add(versions...)
	})
}

// Adapters lets configure register namespaces and then generates the adapter
// units for each namespace in registration order:
//   - the API unit compat<Ns>Api
//   - for each version v the adapter unit compat<Ns><v> and its test unit
//     testCompat<Ns><v>
//
// The target unit sees the output of all these units and the jar task
// archives it. Each adapter gets a test task that runs its test unit.
func (ext *Extension) Adapters(configure func(*AdaptersConfig) error) error {
	cfg := newAdaptersConfig()
	if configure != nil {
		if err := configure(cfg); err != nil {
			return err
		}
	}
	nss := cfg.Namespaces.All()
	for _, ns := range nss {
		if err := ext.checkNamespace(ns); err != nil {
			return fmt.Errorf("namespace '%s': %w", ns.name, err)
		}
	}
	t := ext.trace.Push("adapters")
	for _, ns := range nss {
		if err := ext.wireNamespace(t, ns); err != nil {
			return fmt.Errorf("namespace '%s': %w", ns.name, err)
		}
	}
	return nil
}

type commonScopes struct {
	compileOnly, implementation         *vckore.Scope
	testRuntimeOnly, testImplementation *vckore.Scope
}

func (ext *Extension) commonScopes(t *vckore.Trace) (cs commonScopes, err error) {
	api := ext.host.FindScope(vckore.APIScopeName)
	cs.compileOnly, err = ext.scopeIfNecessary(t, CommonCompileOnlyScopeName, api)
	if err != nil {
		return cs, err
	}
	cs.implementation, err = ext.scopeIfNecessary(t, CommonImplementationScopeName, api)
	if err != nil {
		return cs, err
	}
	cs.testRuntimeOnly, err = ext.scopeIfNecessary(t, TestCommonRuntimeOnlyScopeName, nil)
	if err != nil {
		return cs, err
	}
	cs.testImplementation, err = ext.scopeIfNecessary(t, TestCommonImplementationScopeName, nil)
	return cs, err
}

func (cs commonScopes) extendMain(u *vckore.Unit) error {
	if err := u.CompileOnly().Extend(cs.compileOnly); err != nil {
		return err
	}
	return u.Implementation().Extend(cs.implementation)
}

func (cs commonScopes) extendTest(u *vckore.Unit) error {
	if err := u.RuntimeOnly().Extend(cs.testRuntimeOnly); err != nil {
		return err
	}
	return u.Implementation().Extend(cs.testImplementation)
}

// checkNamespace fails for namespaces that cannot be wired before anything
// is generated.
func (ext *Extension) checkNamespace(ns *NamespaceConfig) error {
	if ns.Versions.Len() == 0 {
		return noVersions("namespace", ns.name)
	}
	_, err := ext.host.Unit(ns.target())
	return err
}

func (ext *Extension) wireNamespace(t *vckore.Trace, ns *NamespaceConfig) error {
	versions := ns.Versions.Get()
	t = t.Push(ns)
	t.Debug("wire namespace `ns` with `versions` into `target`",
		"ns", ns.name,
		"versions", versions,
		"target", ns.target(),
	)
	target, err := ext.host.Unit(ns.target())
	if err != nil {
		return err
	}
	test, err := ext.host.Unit(vckore.TestUnitName)
	if err != nil {
		return err
	}
	jar, err := ext.host.Task(vckore.JarTaskName)
	if err != nil {
		return err
	}
	common, err := ext.commonScopes(t)
	if err != nil {
		return err
	}
	if err = common.extendMain(target); err != nil {
		return err
	}
	if err = common.extendTest(test); err != nil {
		return err
	}

	api, err := ext.newUnit(t, ns.APIUnitName())
	if err != nil {
		return err
	}
	if err = common.extendMain(api); err != nil {
		return err
	}
	target.Implementation().AddFiles(api.Output())
	jar.From(api.Output())

	for _, v := range versions {
		if err = ext.wireAdapter(t, ns, v, api, target, common, jar); err != nil {
			return fmt.Errorf("version '%s': %w", v, err)
		}
	}
	return nil
}

func (ext *Extension) wireAdapter(
	t *vckore.Trace,
	ns *NamespaceConfig,
	version string,
	api, target *vckore.Unit,
	common commonScopes,
	jar *vckore.Task,
) error {
	prod, err := ext.newUnit(t, ns.AdapterUnitName(version))
	if err != nil {
		return err
	}
	test, err := ext.newUnit(t, ns.AdapterTestUnitName(version))
	if err != nil {
		return err
	}

	prod.Implementation().AddFiles(api.Output())
	if err = common.extendMain(prod); err != nil {
		return err
	}
	target.Implementation().AddFiles(prod.Output())

	test.Implementation().AddFiles(prod.Output())
	if err = test.Implementation().Extend(prod.Implementation()); err != nil {
		return err
	}
	if err = common.extendTest(test); err != nil {
		return err
	}

	// Dependencies for compiling the adapter that its tests also need, but
	// which must not leak into the target's runtime.
	cato, err := ext.newScope(t, prod.Name()+"CompileAndTestOnly")
	if err != nil {
		return err
	}
	cato.CanBeResolved = false
	cato.CanBeConsumed = false
	cato.Description = fmt.Sprintf("Compile and test only dependencies of the %s adapter.", prod.Name())
	if err = prod.CompileOnly().Extend(cato); err != nil {
		return err
	}
	if err = test.Implementation().Extend(cato); err != nil {
		return err
	}

	tt, err := ext.newTask(t, test.Name(), vckore.TestTask)
	if err != nil {
		return err
	}
	tt.Group = vckore.VerificationGroup
	tt.Description = fmt.Sprintf("Runs the test suite for the %s adapter.", prod.Name())
	tt.TestClassesDirs = test.ClassesDirs()
	tt.Classpath = test.RuntimeClasspath()

	lc, err := ext.adapterTestTask(t)
	if err != nil {
		return err
	}
	lc.DependsOn(tt)

	jar.From(prod.Output())
	return nil
}
