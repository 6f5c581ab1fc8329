// Package vcconf reads the version compatibility configuration of a project
// from YAML and applies it to a [vercompat.Extension].
//
// A configuration looks like this:
//
//	project:
//	  library: true
//	adapters:
//	  namespaces:
//	    - name: Lang
//	      versions: ["3.0", "3.5", "3.10"]
//	tests:
//	  dimensions:
//	    - name: CommonsLang
//	      versions: ["3.0", "3.12.0"]
//	  constraints:
//	    - org.apache.commons:commons-lang3:${0}!!
//	  system_properties:
//	    - name: COMMONS_LANG_VERSION
//	      value: ${CommonsLang}
//
// Namespaces, dimensions and properties are lists to keep their order.
// Versions with a dot must be quoted, YAML reads 3.10 as the number 3.1.
// Templates refer to the versions of a tuple by index ${0}, ${1}… or by
// dimension name.
package vcconf

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "VCMATRIX"

type Config struct {
	Project  ProjectConfig  `mapstructure:"project" yaml:"project"`
	Adapters AdaptersConfig `mapstructure:"adapters" yaml:"adapters"`
	Tests    TestsConfig    `mapstructure:"tests" yaml:"tests"`
	Scopes   []ScopeConfig  `mapstructure:"scopes" yaml:"scopes,omitempty"`
	Tasks    []TaskConfig   `mapstructure:"tasks" yaml:"tasks,omitempty"`
}

type ProjectConfig struct {
	// Dir defaults to the directory of the config file.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// Library applies the Java library conventions with an api scope.
	Library bool `mapstructure:"library" yaml:"library"`
	// Units are created in addition to main and test.
	Units []string `mapstructure:"units" yaml:"units,omitempty"`
}

type AdaptersConfig struct {
	Namespaces []NamespaceConfig `mapstructure:"namespaces" yaml:"namespaces,omitempty"`
}

type NamespaceConfig struct {
	Name       string   `mapstructure:"name" yaml:"name"`
	Versions   []string `mapstructure:"versions" yaml:"versions"`
	TargetUnit string   `mapstructure:"target_unit" yaml:"target_unit,omitempty"`
}

type TestsConfig struct {
	TestUnit   string            `mapstructure:"test_unit" yaml:"test_unit"`
	Dimensions []DimensionConfig `mapstructure:"dimensions" yaml:"dimensions,omitempty"`
	// Constraints are added to the runtime only scope of each tuple.
	Constraints []string `mapstructure:"constraints" yaml:"constraints,omitempty"`
	// SystemProperties are set on each test task.
	SystemProperties []PropertyConfig `mapstructure:"system_properties" yaml:"system_properties,omitempty"`
	// Exclude lists version tuples, in dimension order, that get no test task.
	Exclude [][]string `mapstructure:"exclude" yaml:"exclude,omitempty"`
}

type DimensionConfig struct {
	Name     string   `mapstructure:"name" yaml:"name"`
	Versions []string `mapstructure:"versions" yaml:"versions"`
}

type PropertyConfig struct {
	Name  string `mapstructure:"name" yaml:"name"`
	Value string `mapstructure:"value" yaml:"value"`
}

// ScopeConfig adds to an existing scope, e.g. a dependency to
// commonImplementation.
type ScopeConfig struct {
	Name         string   `mapstructure:"name" yaml:"name"`
	Extends      []string `mapstructure:"extends" yaml:"extends,omitempty"`
	Dependencies []string `mapstructure:"dependencies" yaml:"dependencies,omitempty"`
	Constraints  []string `mapstructure:"constraints" yaml:"constraints,omitempty"`
}

// TaskConfig adds to an existing task.
type TaskConfig struct {
	Name             string           `mapstructure:"name" yaml:"name"`
	DependsOn        []string         `mapstructure:"depends_on" yaml:"depends_on,omitempty"`
	SystemProperties []PropertyConfig `mapstructure:"system_properties" yaml:"system_properties,omitempty"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("project.dir", "")
	v.SetDefault("project.library", true)
	v.SetDefault("tests.test_unit", "test")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file path. Environment variables with prefix
// VCMATRIX override scalar settings, e.g. VCMATRIX_TESTS_TEST_UNIT.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := unmarshal(v)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Project.Dir == "" {
		cfg.Project.Dir = filepath.Dir(path)
	} else if !filepath.IsAbs(cfg.Project.Dir) {
		cfg.Project.Dir = filepath.Join(filepath.Dir(path), cfg.Project.Dir)
	}
	return cfg, nil
}

// Read reads a YAML config from r.
func Read(r io.Reader) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		quotedVersions,
		noFloatStrings,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	namespaceType = reflect.TypeFor[NamespaceConfig]()
	dimensionType = reflect.TypeFor[DimensionConfig]()
)

// quotedVersions rejects unquoted versions like 3.10 that YAML reads as
// numbers. Converting them back to strings would yield "3.1".
func quotedVersions(_, to reflect.Type, data any) (any, error) {
	var what string
	switch to {
	case namespaceType:
		what = "namespace"
	case dimensionType:
		what = "dimension"
	default:
		return data, nil
	}
	m, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	vs, _ := m["versions"].([]any)
	for _, v := range vs {
		if f, ok := v.(float64); ok {
			return nil, fmt.Errorf("%s '%v': version %v must be quoted", what, m["name"], f)
		}
	}
	return data, nil
}

// noFloatStrings rejects all other numbers with fraction where strings are
// expected, e.g. in exclude lists. Integers convert without loss.
func noFloatStrings(from, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.String && (from.Kind() == reflect.Float64 || from.Kind() == reflect.Float32) {
		return nil, fmt.Errorf("number %v must be quoted", data)
	}
	return data, nil
}

// Dump writes cfg as YAML.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks what can be checked without a project: names, templates
// and exclusions. Empty version lists are reported when the config is
// applied.
func (cfg *Config) Validate() error {
	var errs []error
	for i, ns := range cfg.Adapters.Namespaces {
		for j, v := range ns.Versions {
			if v == "" {
				errs = append(errs, fmt.Errorf("namespace %d '%s': empty version %d", i, ns.Name, j))
			}
		}
	}
	dims := make([]string, len(cfg.Tests.Dimensions))
	for i, d := range cfg.Tests.Dimensions {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("dimension %d has no name", i))
		}
		dims[i] = d.Name
	}
	for _, c := range cfg.Tests.Constraints {
		if err := checkTemplate(c, dims); err != nil {
			errs = append(errs, fmt.Errorf("constraint '%s': %w", c, err))
		}
	}
	for _, p := range cfg.Tests.SystemProperties {
		if p.Name == "" {
			errs = append(errs, errors.New("system property without name"))
		}
		if err := checkTemplate(p.Value, dims); err != nil {
			errs = append(errs, fmt.Errorf("system property '%s': %w", p.Name, err))
		}
	}
	for i, ex := range cfg.Tests.Exclude {
		if len(ex) != len(dims) {
			errs = append(errs, fmt.Errorf("exclude %d has %d versions for %d dimensions",
				i,
				len(ex),
				len(dims),
			))
		}
	}
	for i, s := range cfg.Scopes {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("scope %d has no name", i))
		}
	}
	for i, t := range cfg.Tasks {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("task %d has no name", i))
		}
	}
	return errors.Join(errs...)
}
