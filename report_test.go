package vercompat

import (
	"bytes"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

func TestTaskReport(t *testing.T) {
	ext, prj := newTestExtension(t)
	registerDefaultNamespace(t, ext)

	var buf bytes.Buffer
	r := TaskReport{Groups: []string{vckore.VerificationGroup}}
	testerr.Shall(r.Write(&buf, prj)).BeNil(t)
	const want = `Verification tasks
------------------
test - Runs the test suite.
check - Runs all checks.
testCompat1Dot0 - Runs the test suite for the compat1Dot0 adapter.
testCompatibilityAdapters - Runs all compatibility adapter tests.
`
	if out := buf.String(); out != want {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestTaskReport_details(t *testing.T) {
	ext, prj := newTestExtension(t)
	testerr.Shall(ext.Tests(func(cfg *TestsConfig) error {
		cfg.EachTestRuntimeOnly(func(c *TestRuntimeOnlyConfig) {
			c.AddConstraint("a:b:" + c.Versions()[0])
		})
		_, err := cfg.Dimension("dim", "1.0")
		return err
	})).BeNil(t)

	var buf bytes.Buffer
	r := TaskReport{
		Details: true,
		Other:   true,
		Heading: strings.ToUpper,
	}
	testerr.Shall(r.Write(&buf, prj)).BeNil(t)
	out := buf.String()
	for _, s := range []string{
		"BUILD TASKS\n-----------\n",
		"VERIFICATION TASKS\n",
		"OTHER TASKS\n",
		"\n    depends on: testCompatibilityWithDim1Dot0\n",
		"\n    constraint: a:b:1.0\n",
		"\n    classpath:\n      ",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("report does not contain %q:\n%s", s, out)
		}
	}
}

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	pw := newPrefixWriter(&buf, "> ")
	pw.Write([]byte("a\nb"))
	pw.Write([]byte("c\n\nd\n"))
	if out := buf.String(); out != "> a\n> bc\n> \n> d\n" {
		t.Errorf("prefixed %q", out)
	}
}
