package vckore

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Tracer receives the events of generating a build model. Message arguments
// are key value pairs, keys are referenced in msg as `key`.
type Tracer interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)

	StartProject(t *Trace, p *Project, activity string)
	DoneProject(t *Trace, p *Project, activity string, dt time.Duration)

	// Created is called for each unit, scope or task a generator creates.
	Created(t *Trace, obj Named)
}

type TraceLog int

var DefaultTraceLog TraceLog = TraceWarn

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

type Trace struct {
	root *traceRoot
	up   *Trace
	obj  any
	id   uint64
}

// NewTrace creates a trace that reports to tr. A nil tr discards all events.
func NewTrace(ctx context.Context, tr Tracer) *Trace {
	if ctx == nil {
		ctx = context.Background()
	}
	if tr == nil {
		tr = NopTracer{}
	}
	return &Trace{root: &traceRoot{ctx: ctx, tr: tr}}
}

func (t *Trace) Ctx() context.Context { return t.root.ctx }

func (t *Trace) Debug(msg string, args ...any) { t.root.tr.Debug(t, msg, args...) }
func (t *Trace) Info(msg string, args ...any)  { t.root.tr.Info(t, msg, args...) }
func (t *Trace) Warn(msg string, args ...any)  { t.root.tr.Warn(t, msg, args...) }

func (t *Trace) Created(obj Named) { t.root.tr.Created(t, obj) }

// StartProject reports the start of activity on p. The returned function
// reports its end.
func (t *Trace) StartProject(p *Project, activity string) (done func()) {
	start := time.Now()
	t.root.tr.StartProject(t, p, activity)
	return func() {
		t.root.tr.DoneProject(t, p, activity, time.Since(start))
	}
}

// Push returns a child trace with obj on top of the trace path.
func (t *Trace) Push(obj any) *Trace {
	return &Trace{
		root: t.root,
		up:   t,
		obj:  obj,
		id:   t.root.idSeq.Add(1),
	}
}

func (t *Trace) TopTag() string {
	switch o := t.obj.(type) {
	case nil:
		return ""
	case string:
		return o
	case *Project:
		return fmt.Sprintf("{%d}", t.id)
	case *Unit:
		return fmt.Sprintf("[%s]", o.name)
	case *Task:
		return fmt.Sprintf("(%s)", o.name)
	case Named:
		return o.Name()
	case fmt.Stringer:
		return o.String()
	}
	return fmt.Sprintf("!%T!", t.obj)
}

func (t *Trace) Path() string {
	var tags []string
	for ; t != nil; t = t.up {
		if tag := t.TopTag(); tag != "" {
			tags = append(tags, tag)
		}
	}
	for l, r := 0, len(tags)-1; l < r; l, r = l+1, r-1 {
		tags[l], tags[r] = tags[r], tags[l]
	}
	return "<" + strings.Join(tags, "/") + ">"
}

func (t *Trace) String() string { return t.Path() }

type traceRoot struct {
	ctx   context.Context
	tr    Tracer
	idSeq atomic.Uint64
}

type NopTracer struct{}

var _ Tracer = NopTracer{}

func (NopTracer) Debug(*Trace, string, ...any)                        {}
func (NopTracer) Info(*Trace, string, ...any)                         {}
func (NopTracer) Warn(*Trace, string, ...any)                         {}
func (NopTracer) StartProject(*Trace, *Project, string)               {}
func (NopTracer) DoneProject(*Trace, *Project, string, time.Duration) {}
func (NopTracer) Created(*Trace, Named)                               {}
