package vckore

import (
	"fmt"
	"slices"
)

// Named is implemented by everything that can be kept in a [Container].
type Named interface {
	Name() string
}

// Container holds named objects in the order they were added. Names are
// unique within a container.
type Container[T Named] struct {
	kind    string
	factory func(name string) T
	objs    map[string]T
	order   []string
	onAdd   []func(T)
}

// NewContainer creates an empty container. Kind is used in error messages.
// The factory is used by [Container.Register] and may be nil if objects are
// only added with [Container.Add].
func NewContainer[T Named](kind string, factory func(name string) T) *Container[T] {
	return &Container[T]{
		kind:    kind,
		factory: factory,
		objs:    make(map[string]T),
	}
}

func (c *Container[T]) Kind() string { return c.kind }

// Register creates a new object with the container's factory, adds it and
// then calls configure on it, if configure is not nil. Observers registered
// with [Container.WhenAdded] see the object before it is configured.
func (c *Container[T]) Register(name string, configure func(T)) (obj T, err error) {
	if c.factory == nil {
		return obj, fmt.Errorf("cannot register %s '%s': container has no factory", c.kind, name)
	}
	if _, ok := c.objs[name]; ok {
		return obj, DuplicateError{Kind: c.kind, Name: name}
	}
	obj = c.factory(name)
	if err = c.Add(obj); err != nil {
		return obj, err
	}
	if configure != nil {
		configure(obj)
	}
	return obj, nil
}

func (c *Container[T]) Add(obj T) error {
	name := obj.Name()
	if _, ok := c.objs[name]; ok {
		return DuplicateError{Kind: c.kind, Name: name}
	}
	c.objs[name] = obj
	c.order = append(c.order, name)
	for _, f := range c.onAdd {
		f(obj)
	}
	return nil
}

func (c *Container[T]) Find(name string) (T, bool) {
	obj, ok := c.objs[name]
	return obj, ok
}

func (c *Container[T]) Get(name string) (T, error) {
	obj, ok := c.objs[name]
	if !ok {
		return obj, NotFoundError{Kind: c.kind, Name: name}
	}
	return obj, nil
}

func (c *Container[T]) Len() int { return len(c.order) }

// Names returns the names of all objects in insertion order.
func (c *Container[T]) Names() []string { return slices.Clone(c.order) }

// All returns all objects in insertion order.
func (c *Container[T]) All() []T {
	if len(c.order) == 0 {
		return nil
	}
	res := make([]T, len(c.order))
	for i, n := range c.order {
		res[i] = c.objs[n]
	}
	return res
}

// WhenAdded registers f to be called for every object added from now on.
func (c *Container[T]) WhenAdded(f func(T)) {
	c.onAdd = append(c.onAdd, f)
}

// Each calls f for all current objects and for every object added later.
func (c *Container[T]) Each(f func(T)) {
	for _, obj := range c.All() {
		f(obj)
	}
	c.WhenAdded(f)
}

type DuplicateError struct {
	Kind, Name string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("cannot add %s '%s': the name is already taken", e.Kind, e.Name)
}

func (DuplicateError) Is(target error) bool {
	_, ok := target.(DuplicateError)
	return ok
}

type NotFoundError struct {
	Kind, Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with name '%s' not found", e.Kind, e.Name)
}

func (NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	return ok
}
