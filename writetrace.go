package vercompat

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git.fractalqb.de/fractalqb/sllm/v3"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

type WriteTracer struct {
	W   io.Writer
	Log vckore.TraceLog
}

var _ vckore.Tracer = (*WriteTracer)(nil)

func NewDefaultTracer() *WriteTracer {
	return &WriteTracer{W: os.Stderr, Log: vckore.DefaultTraceLog}
}

func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = vckore.TraceWarn
	case "info", "i":
		tr.Log = vckore.TraceWarn | vckore.TraceInfo
	case "debug", "d":
		tr.Log = vckore.TraceWarn | vckore.TraceInfo | vckore.TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr *WriteTracer) Debug(t *vckore.Trace, msg string, args ...any) {
	if tr.Log&vckore.TraceDebug == 0 {
		return
	}
	tr.message(t, "DEBUG", msg, args)
}

func (tr *WriteTracer) Info(t *vckore.Trace, msg string, args ...any) {
	if tr.Log&(vckore.TraceInfo|vckore.TraceDebug) == 0 {
		return
	}
	tr.message(t, "INFO ", msg, args)
}

func (tr *WriteTracer) Warn(t *vckore.Trace, msg string, args ...any) {
	if tr.Log == 0 {
		return
	}
	tr.message(t, "WARN ", msg, args)
}

func (tr *WriteTracer) message(t *vckore.Trace, level, msg string, args []any) {
	fmt.Fprintf(tr.W, "%s\t  %s ", t.Path(), level)
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr *WriteTracer) StartProject(t *vckore.Trace, p *vckore.Project, activity string) {
	if tr.Log == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%s\t{ %s project '%s' in %s\n",
		t.Path(),
		activity,
		p,
		p.Dir,
	)
}

func (tr *WriteTracer) DoneProject(t *vckore.Trace, p *vckore.Project, activity string, dt time.Duration) {
	if tr.Log == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%s\t} %s project '%s' took %s\n",
		t.Path(),
		activity,
		p,
		dt,
	)
}

func (tr *WriteTracer) Created(t *vckore.Trace, obj vckore.Named) {
	if tr.Log&(vckore.TraceInfo|vckore.TraceDebug) == 0 {
		return
	}
	var kind string
	switch obj.(type) {
	case *vckore.Unit:
		kind = "unit"
	case *vckore.Scope:
		kind = "scope"
	case *vckore.Task:
		kind = "task"
	default:
		kind = fmt.Sprintf("%T", obj)
	}
	fmt.Fprintf(tr.W, "%s\t+ %s '%s'\n", t.Path(), kind, obj.Name())
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, fmt.Errorf("no value for key '%s'", n)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value), nil
			}
			as = as[1:]
		default:
			return buf, fmt.Errorf("illegal key type %T", k)
		}
	}
	return buf, fmt.Errorf("no key '%s'", n)
}
