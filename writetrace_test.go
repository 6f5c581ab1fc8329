package vercompat

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

func TestWriteTracer(t *testing.T) {
	var buf bytes.Buffer
	tr := &WriteTracer{W: &buf}
	testerr.Shall(tr.ParseLogFlag("info")).BeNil(t)
	ext := testerr.Shall1(NewJavaLibrary("prj", vckore.NewTrace(context.Background(), tr))).BeNil(t)
	testerr.Shall(Edit(ext, func(ext ExtensionEd) {
		ext.Adapters(func(a AdaptersEd) { a.Namespace("", "1.0") })
	})).BeNil(t)
	out := buf.String()
	for _, s := range []string{
		"{ edit project 'prj' in prj\n",
		"<adapters>\t+ unit 'compatApi'\n",
		"+ scope 'commonCompileOnly'\n",
		"+ task 'testCompat1Dot0'\n",
		"} edit project 'prj' took ",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("trace does not contain %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "DEBUG") {
		t.Error("debug message at info level")
	}
}

func TestWriteTracer_ParseLogFlag(t *testing.T) {
	var tr WriteTracer
	for flag, log := range map[string]vckore.TraceLog{
		"off":   0,
		"w":     vckore.TraceWarn,
		"info":  vckore.TraceWarn | vckore.TraceInfo,
		"debug": vckore.TraceWarn | vckore.TraceInfo | vckore.TraceDebug,
	} {
		testerr.Shall(tr.ParseLogFlag(flag)).BeNil(t)
		if tr.Log != log {
			t.Errorf("flag '%s' sets %d", flag, tr.Log)
		}
	}
	if err := tr.ParseLogFlag("loud"); err == nil {
		t.Error("accepted illegal flag")
	}
}

func TestWriteTracer_off(t *testing.T) {
	var buf bytes.Buffer
	tr := &WriteTracer{W: &buf}
	trace := vckore.NewTrace(context.Background(), tr)
	prj := vckore.NewProject("prj")
	trace.Warn("nothing")
	trace.StartProject(prj, "edit")()
	trace.Created(prj)
	if buf.Len() > 0 {
		t.Errorf("tracer is not off: %s", buf.String())
	}
}
