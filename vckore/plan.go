package vckore

import (
	"github.com/bits-and-blooms/bitset"
)

// Plan returns the named tasks and everything they depend on in execution
// order, i.e. each task comes after all of its dependencies. Independent
// tasks keep the order in which they were requested or declared.
func (prj *Project) Plan(names ...string) ([]*Task, error) {
	index := make(map[*Task]uint, prj.tasks.Len())
	for i, t := range prj.tasks.All() {
		index[t] = uint(i)
	}
	var (
		done    = bitset.New(uint(len(index)))
		onStack = bitset.New(uint(len(index)))
		stack   []string
		res     []*Task
		visit   func(*Task) error
	)
	visit = func(t *Task) error {
		i := index[t]
		if done.Test(i) {
			return nil
		}
		if onStack.Test(i) {
			path := []string{t.name}
			for j := len(stack) - 1; j >= 0 && stack[j] != t.name; j-- {
				path = append(path, stack[j])
			}
			path = append(path, t.name)
			for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
				path[l], path[r] = path[r], path[l]
			}
			return CycleError{Kind: "task", Path: path}
		}
		onStack.Set(i)
		stack = append(stack, t.name)
		deps, err := t.TaskDependencies()
		if err != nil {
			return err
		}
		for _, d := range deps {
			if err := visit(d); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		onStack.Clear(i)
		done.Set(i)
		res = append(res, t)
		return nil
	}
	for _, n := range names {
		t, err := prj.tasks.Get(n)
		if err != nil {
			return nil, err
		}
		if err = visit(t); err != nil {
			return nil, err
		}
	}
	return res, nil
}
