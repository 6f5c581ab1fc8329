package vercompat

import (
	"context"
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/testerr"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

type TestTracer struct{ t *testing.T }

var _ vckore.Tracer = TestTracer{}

func (tr TestTracer) Debug(t *vckore.Trace, msg string, args ...any) {
	tr.t.Logf("vercompat-DEBUG: %s %s %v", t, msg, args)
}

func (tr TestTracer) Info(t *vckore.Trace, msg string, args ...any) {
	tr.t.Logf("vercompat-INFO: %s %s %v", t, msg, args)
}

func (tr TestTracer) Warn(t *vckore.Trace, msg string, args ...any) {
	tr.t.Logf("vercompat-WARN: %s %s %v", t, msg, args)
}

func (tr TestTracer) StartProject(t *vckore.Trace, p *vckore.Project, activity string) {
	tr.t.Logf("vercompat-StartProject: %s %s", p, activity)
}

func (tr TestTracer) DoneProject(t *vckore.Trace, p *vckore.Project, activity string, dt time.Duration) {
	tr.t.Logf("vercompat-DoneProject: %s %s %s", p, activity, dt)
}

func (tr TestTracer) Created(t *vckore.Trace, obj vckore.Named) {
	tr.t.Logf("vercompat-Created: %s %T %s", t, obj, obj.Name())
}

func newTestExtension(t *testing.T) (*Extension, *vckore.Project) {
	ext := testerr.Shall1(NewJavaLibrary("prj",
		vckore.NewTrace(context.Background(), TestTracer{t}),
	)).BeNil(t)
	return ext, ext.Host().(*vckore.Project)
}
