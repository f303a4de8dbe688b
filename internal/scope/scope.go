// Package scope implements the lexical-scope runtime: a tree of name to
// Variable bindings, and the execution context that tracks which scope is
// current (spec §3 Scope/Variable/Execution context, §4.5).
package scope

import "github.com/kristofer/loxgo/internal/eval"

// Variable is a mutable binding: the scope that owns it, its name, and
// its current value. Created by declaration, never destroyed before its
// owning scope ends, mutated by assignment.
type Variable struct {
	Scope *Scope
	Name  string
	Value eval.Value
}

// Scope is a name-to-variable mapping with a parent link. Scopes form a
// strict tree rooted at a Context's root scope; a Scope's lifetime
// matches its enclosing block.
type Scope struct {
	parent    *Scope
	variables map[string]*Variable
}

func newScope(parent *Scope) *Scope {
	return &Scope{parent: parent, variables: make(map[string]*Variable)}
}

// Create inserts a fresh variable into this scope, shadowing any outer
// binding of the same name, and returns its handle.
func (s *Scope) Create(name string) *Variable {
	v := &Variable{Scope: s, Name: name, Value: eval.Nil}
	s.variables[name] = v
	return v
}

// Lookup searches this scope and its ancestors, innermost first, for
// name. It fails with an UndefinedVariable runtime error on miss.
func (s *Scope) Lookup(name string, line int) (*Variable, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.variables[name]; ok {
			return v, nil
		}
	}
	return nil, eval.UndefinedVariable(line, name)
}

// Context owns the root scope and the current-scope pointer. Only the
// parser mutates the pointer (push on "{", pop on "}"); the evaluator
// only reads it.
type Context struct {
	Root    *Scope
	current *Scope
}

// NewContext returns a Context with a single root scope as current.
func NewContext() *Context {
	root := newScope(nil)
	return &Context{Root: root, current: root}
}

// Current returns the scope the parser is currently assembling statements
// against.
func (c *Context) Current() *Scope {
	return c.current
}

// Push opens a new scope, child of the current one, on "{".
func (c *Context) Push() {
	c.current = newScope(c.current)
}

// Pop closes the current scope on "}". Popping the root scope is a
// runtime error.
func (c *Context) Pop(line int) error {
	if c.current.parent == nil {
		return eval.Generic(line)
	}
	c.current = c.current.parent
	return nil
}

// AtRoot reports whether the current scope is the context's root scope.
func (c *Context) AtRoot() bool {
	return c.current == c.Root
}
