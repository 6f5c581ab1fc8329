package vcconf

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"git.fractalqb.de/fractalqb/vercompat"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

// NewExtension creates the project described by cfg with the Java (library)
// conventions applied, and applies cfg to an extension of it.
func NewExtension(cfg *Config, t *vckore.Trace) (*vercompat.Extension, *vckore.Project, error) {
	prj := vckore.NewProject(cfg.Project.Dir)
	var err error
	if cfg.Project.Library {
		err = vckore.ApplyJavaLibrary(prj)
	} else {
		err = vckore.ApplyJava(prj)
	}
	if err != nil {
		return nil, nil, err
	}
	ext := vercompat.NewExtension(prj, t)
	if err := Apply(cfg, ext); err != nil {
		return nil, nil, err
	}
	return ext, prj, nil
}

// Apply creates the extra units of cfg, generates the adapters and, if cfg
// has dimensions, the compatibility tests. Then the scope and task settings
// are applied, so they can refer to generated scopes and tasks.
func Apply(cfg *Config, ext *vercompat.Extension) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return vercompat.Edit(ext, func(ed vercompat.ExtensionEd) {
		host := ed.Host()
		for _, name := range cfg.Project.Units {
			u, err := host.NewUnit(name)
			if err != nil {
				panic(fmt.Errorf("unit '%s': %w", name, err))
			}
			ext.Trace().Created(u)
		}
		if len(cfg.Adapters.Namespaces) > 0 {
			ed.Adapters(func(a vercompat.AdaptersEd) {
				for _, ns := range cfg.Adapters.Namespaces {
					a.Namespace(ns.Name, ns.Versions...).Target(ns.TargetUnit)
				}
			})
		}
		if len(cfg.Tests.Dimensions) > 0 {
			ed.Tests(func(ts vercompat.TestsEd) { applyTests(ts, &cfg.Tests, ext) })
		}
		for _, s := range cfg.Scopes {
			ed.Scope(s.Name).
				Extend(s.Extends...).
				Dependency(s.Dependencies...).
				Constraint(s.Constraints...)
		}
		for _, t := range cfg.Tasks {
			ted := ed.Task(t.Name).DependsOn(t.DependsOn...)
			for _, p := range t.SystemProperties {
				ted.SystemProperty(p.Name, p.Value)
			}
		}
	})
}

func applyTests(ts vercompat.TestsEd, cfg *TestsConfig, ext *vercompat.Extension) {
	ts.TestUnit(cfg.TestUnit)
	for _, d := range cfg.Dimensions {
		ts.Dimension(d.Name, d.Versions...)
	}
	if len(cfg.Constraints) > 0 {
		ts.EachTestRuntimeOnly(func(c *vercompat.TestRuntimeOnlyConfig) {
			for _, tpl := range cfg.Constraints {
				c.AddConstraint(Expand(tpl, c.Tuple()))
			}
		})
	}
	if len(cfg.SystemProperties) > 0 {
		ts.EachTestTask(func(c *vercompat.TestTaskConfig) {
			tuple := c.Tuple()
			for _, p := range cfg.SystemProperties {
				c.TestTask().SystemProperty(p.Name, Expand(p.Value, tuple))
			}
		})
	}
	if len(cfg.Exclude) > 0 {
		names := make([]string, len(cfg.Dimensions))
		for i, d := range cfg.Dimensions {
			names[i] = d.Name
		}
		ts.Filter(func(versions []string) bool {
			// Tuples come in the extension's dimension order
			order := ext.DimensionOrder()
			sorted := slices.Clone(names)
			slices.SortStableFunc(sorted, func(a, b string) int {
				return slices.Index(order, a) - slices.Index(order, b)
			})
			byName := make(map[string]string, len(sorted))
			for i, n := range sorted {
				byName[n] = versions[i]
			}
			return !slices.ContainsFunc(cfg.Exclude, func(ex []string) bool {
				for i, n := range names {
					if byName[n] != ex[i] {
						return false
					}
				}
				return true
			})
		})
	}
}

// Expand replaces ${i} with the version at index i of tuple and ${name} with
// the version of the dimension name. Unknown references expand to the empty
// string. Use [Config.Validate] to check templates.
func Expand(tpl string, tuple vercompat.VersionTuple) string {
	return os.Expand(tpl, func(key string) string {
		if i, err := strconv.Atoi(key); err == nil {
			if i >= 0 && i < len(tuple) {
				return tuple[i].Version
			}
			return ""
		}
		for _, nv := range tuple {
			if nv.Name == key {
				return nv.Version
			}
		}
		return ""
	})
}

func checkTemplate(tpl string, dims []string) error {
	var errs []error
	os.Expand(tpl, func(key string) string {
		if i, err := strconv.Atoi(key); err == nil {
			if i < 0 || i >= len(dims) {
				errs = append(errs, fmt.Errorf("version index %d out of range [0,%d)", i, len(dims)))
			}
		} else if !slices.Contains(dims, key) {
			errs = append(errs, fmt.Errorf("unknown dimension '%s'", key))
		}
		return ""
	})
	return errors.Join(errs...)
}
