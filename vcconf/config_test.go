package vcconf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.fractalqb.de/fractalqb/vercompat"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

const langConfig = `
adapters:
  namespaces:
    - name: Lang
      versions: ["3.0", "3.5"]
tests:
  dimensions:
    - name: CommonsLang
      versions: ["3.0", "3.12.0"]
    - name: Jdk
      versions: ["11", "17"]
  constraints:
    - org.apache.commons:commons-lang3:${0}!!
  system_properties:
    - name: JDK
      value: ${Jdk}
  exclude:
    - ["3.0", "17"]
scopes:
  - name: commonCompileOnly
    dependencies:
      - org.apache.commons:commons-lang3:3.0
tasks:
  - name: check
    depends_on: [testCompatibility, testCompatibilityAdapters]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vcmatrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, langConfig)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(path), cfg.Project.Dir)
	assert.True(t, cfg.Project.Library)
	assert.Equal(t, "test", cfg.Tests.TestUnit)
	require.Len(t, cfg.Adapters.Namespaces, 1)
	assert.Equal(t, "Lang", cfg.Adapters.Namespaces[0].Name)
	assert.Equal(t, []string{"3.0", "3.5"}, cfg.Adapters.Namespaces[0].Versions)
	require.Len(t, cfg.Tests.Dimensions, 2)
	assert.Equal(t, "CommonsLang", cfg.Tests.Dimensions[0].Name)
	assert.Equal(t, "Jdk", cfg.Tests.Dimensions[1].Name)
	assert.Equal(t, [][]string{{"3.0", "17"}}, cfg.Tests.Exclude)
	assert.Equal(t, []string{"testCompatibility", "testCompatibilityAdapters"}, cfg.Tasks[0].DependsOn)
}

func TestLoad_env(t *testing.T) {
	path := writeConfig(t, langConfig)
	t.Setenv("VCMATRIX_TESTS_TEST_UNIT", "functionalTest")
	t.Setenv("VCMATRIX_PROJECT_LIBRARY", "false")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "functionalTest", cfg.Tests.TestUnit)
	assert.False(t, cfg.Project.Library)
}

func TestLoad_relativeDir(t *testing.T) {
	path := writeConfig(t, "project:\n  dir: lib\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "lib"), cfg.Project.Dir)
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRead_invalid(t *testing.T) {
	_, err := Read(strings.NewReader(`
tests:
  dimensions:
    - name: Jdk
      versions: ["11"]
  constraints:
    - g:n:${1}
    - g:n:${Lang}
  exclude:
    - ["11", "17"]
`))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "version index 1 out of range")
	assert.Contains(t, msg, "unknown dimension 'Lang'")
	assert.Contains(t, msg, "exclude 0 has 2 versions for 1 dimensions")
}

func TestRead_unquotedVersions(t *testing.T) {
	_, err := Read(strings.NewReader(`
adapters:
  namespaces:
    - name: Lang
      versions: [3.0, 3.10]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namespace 'Lang'")
	assert.Contains(t, err.Error(), "must be quoted")

	_, err = Read(strings.NewReader(`
tests:
  dimensions:
    - name: CommonsLang
      versions: ["3.0", 3.12]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension 'CommonsLang'")

	_, err = Read(strings.NewReader(`
tests:
  dimensions:
    - name: Jdk
      versions: ["11", "17"]
  exclude:
    - [17.5]
`))
	assert.Error(t, err)
}

func TestRead_integerVersions(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
tests:
  dimensions:
    - name: Jdk
      versions: [11, 17]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"11", "17"}, cfg.Tests.Dimensions[0].Versions)
}

func TestDump(t *testing.T) {
	cfg, err := Read(strings.NewReader(langConfig))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, cfg))
	again, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestExpand(t *testing.T) {
	tuple := vercompat.VersionTuple{{Name: "Lang", Version: "3.0"}, {Name: "Jdk", Version: "17"}}
	assert.Equal(t, "g:n:3.0!!", Expand("g:n:${0}!!", tuple))
	assert.Equal(t, "17-3.0", Expand("${Jdk}-${Lang}", tuple))
	assert.Equal(t, "x", Expand("x${5}${Foo}", tuple))
}

func TestNewExtension(t *testing.T) {
	cfg, err := Read(strings.NewReader(langConfig))
	require.NoError(t, err)
	_, prj, err := NewExtension(cfg, nil)
	require.NoError(t, err)

	for _, n := range []string{"compatLangApi", "compatLang3Dot0", "testCompatLang3Dot5"} {
		assert.NotNil(t, prj.FindUnit(n), n)
	}
	assert.NotNil(t, prj.FindScope(vckore.APIScopeName))

	assert.NotNil(t, prj.FindTask("testCompatibilityWithCommonsLang3Dot0AndJdk11"))
	assert.Nil(t, prj.FindTask("testCompatibilityWithCommonsLang3Dot0AndJdk17"))
	assert.NotNil(t, prj.FindTask("testCompatibilityWithCommonsLang3Dot12Dot0AndJdk17"))
	tc, err := prj.Task(vercompat.CompatibilityTestTaskName)
	require.NoError(t, err)
	assert.Len(t, tc.Dependencies(), 3)

	ro, err := prj.Scope("testCompatibilityWithCommonsLang3Dot12Dot0AndJdk11RuntimeOnly")
	require.NoError(t, err)
	assert.Equal(t, []string{"org.apache.commons:commons-lang3:3.12.0!!"}, ro.Constraints())

	tk, err := prj.Task("testCompatibilityWithCommonsLang3Dot12Dot0AndJdk11")
	require.NoError(t, err)
	assert.Equal(t, []vckore.Property{{Key: "JDK", Value: "11"}}, tk.SystemProperties())

	cco, err := prj.Scope(vercompat.CommonCompileOnlyScopeName)
	require.NoError(t, err)
	deps := cco.Dependencies()
	require.Len(t, deps, 1)
	assert.Equal(t, "org.apache.commons:commons-lang3:3.0", deps[0].Notation)

	check, err := prj.Task(vckore.CheckTaskName)
	require.NoError(t, err)
	assert.Len(t, check.Dependencies(), 3)
}

func TestNewExtension_noVersions(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
adapters:
  namespaces:
    - name: dummy
`))
	require.NoError(t, err)
	_, _, err = NewExtension(cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, vercompat.ErrNoVersions)
	assert.Contains(t, err.Error(), "no versions specified for dummy")
}

func TestNewExtension_units(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
project:
  library: false
  units: [functionalTest]
tests:
  test_unit: functionalTest
  dimensions:
    - name: Jdk
      versions: ["21"]
`))
	require.NoError(t, err)
	_, prj, err := NewExtension(cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, prj.FindScope(vckore.APIScopeName))
	assert.NotNil(t, prj.FindTask("functionalTestCompatibilityWithJdk21"))
}
