package vercompat

import (
	"cmp"
	"fmt"
	"slices"

	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

// DimensionConfig configures one axis of the compatibility test matrix.
type DimensionConfig struct {
	// Versions must not be empty.
	Versions VersionSet

	name string
}

func newDimensionConfig(name string) *DimensionConfig {
	return &DimensionConfig{name: name}
}

func (d *DimensionConfig) Name() string { return d.name }

func (d *DimensionConfig) check() error {
	if err := checkDimensionName(d.name); err != nil {
		return err
	}
	if d.Versions.Len() == 0 {
		return noVersions("dimension", d.name)
	}
	return nil
}

// TestsConfig is passed to the configure function of [Extension.Tests].
type TestsConfig struct {
	Dimensions *vckore.Container[*DimensionConfig]
	// TestUnit is the unit whose tests are run against each version tuple,
	// "test" if empty.
	TestUnit string

	runtimeOnly []func(*TestRuntimeOnlyConfig)
	testTask    []func(*TestTaskConfig)
	filters     []func(versions []string) bool
}

func newTestsConfig() *TestsConfig {
	return &TestsConfig{
		Dimensions: vckore.NewContainer("dimension", newDimensionConfig),
	}
}

// Dimension registers a dimension and checks it immediately.
func (cfg *TestsConfig) Dimension(name string, versions ...string) (*DimensionConfig, error) {
	d, err := cfg.Dimensions.Register(name, func(d *DimensionConfig) {
		d.Versions.Add(versions...)
	})
	if err != nil {
		return d, err
	}
	return d, d.check()
}

// EachTestRuntimeOnly registers f to be called with the runtime only scope of
// every generated version tuple.
func (cfg *TestsConfig) EachTestRuntimeOnly(f func(*TestRuntimeOnlyConfig)) {
	cfg.runtimeOnly = append(cfg.runtimeOnly, f)
}

// EachTestTask registers f to be called with every generated test task.
func (cfg *TestsConfig) EachTestTask(f func(*TestTaskConfig)) {
	cfg.testTask = append(cfg.testTask, f)
}

// Filter adds a predicate on the versions of a tuple. Only tuples accepted
// by all predicates get a test task.
func (cfg *TestsConfig) Filter(pred func(versions []string) bool) {
	cfg.filters = append(cfg.filters, pred)
}

func (cfg *TestsConfig) testUnit() string {
	if cfg.TestUnit == "" {
		return vckore.TestUnitName
	}
	return cfg.TestUnit
}

func (cfg *TestsConfig) accept(versions []string) bool {
	for _, f := range cfg.filters {
		if !f(versions) {
			return false
		}
	}
	return true
}

type hasVersionTuple struct {
	tuple VersionTuple
}

// Versions returns the versions of the tuple in dimension order.
func (h hasVersionTuple) Versions() []string { return h.tuple.Versions() }

func (h hasVersionTuple) Tuple() VersionTuple { return slices.Clone(h.tuple) }

type TestRuntimeOnlyConfig struct {
	hasVersionTuple
	scope *vckore.Scope
}

// AddConstraint adds a dependency constraint to the runtime only scope. Use
// strict versions like "group:name:1.0!!" to detect conflicts.
func (c *TestRuntimeOnlyConfig) AddConstraint(notation string) {
	c.scope.AddConstraint(notation)
}

func (c *TestRuntimeOnlyConfig) Scope() *vckore.Scope { return c.scope }

type TestTaskConfig struct {
	hasVersionTuple
	task *vckore.Task
}

func (c *TestTaskConfig) TestTask() *vckore.Task { return c.task }

// Tests lets configure register dimensions and callbacks and then generates
// one test task for each tuple of the cartesian product of the dimensions'
// versions. Dimensions are ordered by their first registration with ext,
// also across calls of Tests. Each task runs the tests of the test unit with
// a classpath of its own and is a dependency of the testCompatibility task.
func (ext *Extension) Tests(configure func(*TestsConfig) error) error {
	cfg := newTestsConfig()
	cfg.Dimensions.Each(func(d *DimensionConfig) { ext.noteDimension(d.name) })
	if configure != nil {
		if err := configure(cfg); err != nil {
			return err
		}
	}
	dims := cfg.Dimensions.All()
	for _, d := range dims {
		if err := d.check(); err != nil {
			return err
		}
	}
	slices.SortStableFunc(dims, func(a, b *DimensionConfig) int {
		return cmp.Compare(ext.dimensionIndex(a.name), ext.dimensionIndex(b.name))
	})

	t := ext.trace.Push("tests")
	testUnitName := cfg.testUnit()
	testUnit, err := ext.host.Unit(testUnitName)
	if err != nil {
		return err
	}
	mainUnit, err := ext.host.Unit(vckore.MainUnitName)
	if err != nil {
		return err
	}
	lifecycle, err := ext.compatibilityTestTask(t)
	if err != nil {
		return err
	}

	lists := make([][]NamedVersion, len(dims))
	for i, d := range dims {
		vs := d.Versions.Get()
		lists[i] = make([]NamedVersion, len(vs))
		for j, v := range vs {
			lists[i][j] = NamedVersion{Name: d.name, Version: v}
		}
	}
	tuples := Cartesian(lists)
	t.Debug("`count` version tuples for `dimensions`",
		"count", len(tuples),
		"dimensions", len(dims),
	)
	for _, tuple := range tuples {
		vt := VersionTuple(tuple)
		if !cfg.accept(vt.Versions()) {
			t.Debug("filtered `tuple`", "tuple", vt.Description())
			continue
		}
		tk, err := ext.tupleTest(t, cfg, vt, testUnit, mainUnit)
		if err != nil {
			return err
		}
		lifecycle.DependsOn(tk)
	}
	return nil
}

func (ext *Extension) tupleTest(
	t *vckore.Trace,
	cfg *TestsConfig,
	vt VersionTuple,
	testUnit, mainUnit *vckore.Unit,
) (*vckore.Task, error) {
	name := vt.TaskName(testUnit.Name())
	runtimeOnly, err := ext.newScope(t, name+"RuntimeOnly")
	if err != nil {
		return nil, err
	}
	runtimeOnly.CanBeResolved = false
	if err = runtimeOnly.Extend(testUnit.Scope(vckore.RuntimeClasspath)); err != nil {
		return nil, err
	}
	classpath, err := ext.newScope(t, name+"Classpath")
	if err != nil {
		return nil, err
	}
	if err = classpath.Extend(runtimeOnly); err != nil {
		return nil, err
	}
	for _, f := range cfg.runtimeOnly {
		f(&TestRuntimeOnlyConfig{hasVersionTuple{vt}, runtimeOnly})
	}

	tk, err := ext.newTask(t, name, vckore.TestTask)
	if err != nil {
		return nil, err
	}
	tk.Group = vckore.VerificationGroup
	tk.Description = fmt.Sprintf("Runs compatibility %s with %s.", testUnit.Name(), vt.Description())
	tk.TestClassesDirs = testUnit.ClassesDirs()
	resources := vckore.NewFiles(testUnit.ResourcesDir()).
		Built(testUnit.ProcessResourcesTaskName())
	// The test unit's runtime classpath is not used, it has fixed versions.
	tk.Classpath = vckore.Union(
		testUnit.ClassesDirs(),
		resources,
		classpath,
		mainUnit.RuntimeClasspath(),
	)
	for _, f := range cfg.testTask {
		f(&TestTaskConfig{hasVersionTuple{vt}, tk})
	}
	return tk, nil
}
