package graph

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/imamik/redstack/internal/resource"
)

// State is the resolution state of a node.
type State int

const (
	Unresolved State = iota
	Resolving
	Resolved
	Failed
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "Unresolved"
	case Resolving:
		return "Resolving"
	case Resolved:
		return "Resolved"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Reader gives builders read access to the attributes of a node's
// declared dependencies.
type Reader interface {
	// Attribute returns the value stored under key on the named dependency.
	Attribute(name, key string) (any, error)
}

// Builder fills in attributes of a node during resolution.
// Builders run while the graph is locked and must not call Graph methods.
type Builder func(r Reader, attrs resource.Attributes) error

// ResolveHook is called for every node that reaches a terminal state.
// err is nil for resolved nodes. Hooks run while the graph is locked.
type ResolveHook func(node *resource.Node, err error)

// Option configures a Graph.
type Option func(*Graph)

// WithResolveHook registers a hook invoked after each node resolves or fails.
func WithResolveHook(h ResolveHook) Option {
	return func(g *Graph) {
		g.hooks = append(g.hooks, h)
	}
}

var (
	errNotRegistered = errors.New("node is not registered")
	errReferenceOnly = errors.New("imported node is reference-only")
)

type keyedBuilder struct {
	key string
	fn  Builder
}

type entry struct {
	node       *resource.Node
	deps       sets.Set[string]
	dependents sets.Set[string]
	builders   []keyedBuilder
	keys       sets.Set[string]
	state      State
	err        error
}

// Graph is the node table of one composition pass.
type Graph struct {
	mu      sync.Mutex
	entries map[string]*entry
	hooks   []ResolveHook
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{entries: make(map[string]*entry)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Register adds a node under its logical name. Edges listed in
// node.DependsOn are added as part of the registration; if any of them is
// rejected the node is not registered.
func (g *Graph) Register(node *resource.Node, builders ...Builder) error {
	if node == nil || node.Name == "" {
		return &resource.ConfigurationError{Field: "name", Message: "node must have a logical name"}
	}
	if !node.Kind.IsValid() {
		return &resource.ConfigurationError{Field: node.Name, Message: fmt.Sprintf("unknown kind %q", node.Kind)}
	}
	if node.IsImported() {
		if err := checkImported(node, builders); err != nil {
			return err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.entries[node.Name]; exists {
		return &resource.DuplicateNodeError{Name: node.Name}
	}

	stored := node.Clone()
	stored.DependsOn = nil
	if stored.Attributes == nil {
		stored.Attributes = resource.Attributes{}
	}
	e := &entry{
		node:       stored,
		deps:       sets.New[string](),
		dependents: sets.New[string](),
		keys:       sets.New[string](),
	}
	for i, b := range builders {
		key := fmt.Sprintf("init/%d", i)
		e.builders = append(e.builders, keyedBuilder{key: key, fn: b})
		e.keys.Insert(key)
	}
	g.entries[node.Name] = e

	if err := g.addEdges(node.Name, node.DependsOn); err != nil {
		delete(g.entries, node.Name)
		return err
	}
	return nil
}

func checkImported(node *resource.Node, builders []Builder) error {
	if len(builders) > 0 {
		return &resource.ConfigurationError{Field: node.Name, Message: "imported node cannot carry builders"}
	}
	id, ok := node.Attributes.String(resource.AttrID)
	if !ok || id == "" {
		return &resource.ConfigurationError{Field: node.Name, Message: "imported node requires an identifier"}
	}
	if len(node.Attributes) != 1 {
		return &resource.ConfigurationError{Field: node.Name, Message: "imported node carries creation parameters"}
	}
	return nil
}

// AddEdge records that from requires to. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addEdges(from, []string{to})
}

// Extend attaches a builder and its dependencies to an unresolved node.
// Calling Extend again with the same key is a no-op.
func (g *Graph) Extend(name, key string, deps []string, b Builder) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[name]
	if !ok {
		return &resource.ConstructionError{Name: name, Err: errNotRegistered}
	}
	if e.node.IsImported() {
		return &resource.ConstructionError{Name: name, Err: errReferenceOnly}
	}
	if e.state != Unresolved {
		return &resource.ConstructionError{Name: name, Err: fmt.Errorf("cannot extend %s node %q", e.state, key)}
	}
	if e.keys.Has(key) {
		return nil
	}
	if err := g.addEdges(name, deps); err != nil {
		return err
	}
	e.builders = append(e.builders, keyedBuilder{key: key, fn: b})
	e.keys.Insert(key)
	return nil
}

// addEdges validates every edge before inserting any of them.
// Must be called with g.mu held.
func (g *Graph) addEdges(from string, tos []string) error {
	src, ok := g.entries[from]
	if !ok {
		return &resource.DanglingReferenceError{From: from, To: firstOr(tos, ""), Missing: from}
	}
	for _, to := range tos {
		if _, ok := g.entries[to]; !ok {
			return &resource.DanglingReferenceError{From: from, To: to, Missing: to}
		}
		if from == to {
			return &resource.CycleError{Path: []string{from, from}}
		}
		if src.deps.Has(to) {
			continue
		}
		if path := g.pathTo(to, from); path != nil {
			return &resource.CycleError{Path: append([]string{from}, path...)}
		}
		if src.state != Unresolved {
			return &resource.ConstructionError{Name: from, Err: fmt.Errorf("cannot add dependency %q to %s node", to, src.state)}
		}
	}
	for _, to := range tos {
		src.deps.Insert(to)
		g.entries[to].dependents.Insert(from)
	}
	return nil
}

// pathTo returns the dependency path from start to target, or nil.
func (g *Graph) pathTo(start, target string) []string {
	visited := sets.New[string]()
	var walk func(name string) []string
	walk = func(name string) []string {
		if name == target {
			return []string{name}
		}
		if visited.Has(name) {
			return nil
		}
		visited.Insert(name)
		for _, dep := range sets.List(g.entries[name].deps) {
			if rest := walk(dep); rest != nil {
				return append([]string{name}, rest...)
			}
		}
		return nil
	}
	return walk(start)
}

// Resolve resolves the named node and, first, everything it depends on.
// A resolved node is returned from cache; a failed node returns its error.
func (g *Graph) Resolve(name string) (*resource.Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.resolve(name); err != nil {
		return nil, err
	}
	return g.snapshot(g.entries[name]), nil
}

func (g *Graph) resolve(name string) error {
	e, ok := g.entries[name]
	if !ok {
		return &resource.DanglingReferenceError{Missing: name}
	}

	switch e.state {
	case Resolved:
		return nil
	case Failed:
		return e.err
	case Resolving:
		return &resource.CycleError{Path: []string{name, name}}
	}

	e.state = Resolving
	for _, dep := range sets.List(e.deps) {
		if err := g.resolve(dep); err != nil {
			return g.fail(e, fmt.Errorf("dependency %q: %w", dep, err))
		}
	}

	attrs := e.node.Attributes.Clone()
	r := &reader{g: g, self: e}
	for _, b := range e.builders {
		if err := b.fn(r, attrs); err != nil {
			return g.fail(e, fmt.Errorf("%s: %w", b.key, err))
		}
	}

	e.node.Attributes = attrs
	e.node.DependsOn = sets.List(e.deps)
	e.state = Resolved
	g.notify(e, nil)
	return nil
}

func (g *Graph) fail(e *entry, err error) error {
	e.state = Failed
	e.err = &resource.ConstructionError{Name: e.node.Name, Err: err}
	g.notify(e, e.err)
	return e.err
}

func (g *Graph) notify(e *entry, err error) {
	if len(g.hooks) == 0 {
		return
	}
	n := g.snapshot(e)
	for _, h := range g.hooks {
		h(n, err)
	}
}

// ResolveAttribute returns attribute key of a resolved node.
func (g *Graph) ResolveAttribute(name, key string) (any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attribute(name, key)
}

func (g *Graph) attribute(name, key string) (any, error) {
	e, ok := g.entries[name]
	if !ok {
		return nil, &resource.UnresolvedReferenceError{Name: name, Attribute: key, State: "unregistered"}
	}
	if e.state != Resolved {
		return nil, &resource.UnresolvedReferenceError{Name: name, Attribute: key, State: e.state.String()}
	}
	v, ok := e.node.Attributes[key]
	if !ok {
		return nil, &resource.UnresolvedReferenceError{Name: name, Attribute: key}
	}
	return v, nil
}

// ResolveAll resolves every node in topological order and stops at the
// first error.
func (g *Graph) ResolveAll() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	order, err := g.topologicalOrder()
	if err != nil {
		return err
	}
	for _, name := range order {
		if err := g.resolve(name); err != nil {
			return err
		}
	}
	return nil
}

// TopologicalOrder returns all node names with dependencies before
// dependents. Ties are broken lexically, so the order is stable.
func (g *Graph) TopologicalOrder() ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.topologicalOrder()
}

func (g *Graph) topologicalOrder() ([]string, error) {
	remaining := make(map[string]int, len(g.entries))
	var ready []string
	for name, e := range g.entries {
		remaining[name] = e.deps.Len()
		if e.deps.Len() == 0 {
			ready = append(ready, name)
		}
	}
	slices.Sort(ready)

	order := make([]string, 0, len(g.entries))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)

		for _, dependent := range sets.List(g.entries[name].dependents) {
			remaining[dependent]--
			if remaining[dependent] == 0 {
				i, _ := slices.BinarySearch(ready, dependent)
				ready = slices.Insert(ready, i, dependent)
			}
		}
	}

	if len(order) != len(g.entries) {
		var stuck []string
		for name, n := range remaining {
			if n > 0 {
				stuck = append(stuck, name)
			}
		}
		slices.Sort(stuck)
		return nil, &resource.CycleError{Path: stuck}
	}
	return order, nil
}

// Node returns a copy of the named node.
func (g *Graph) Node(name string) (*resource.Node, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[name]
	if !ok {
		return nil, false
	}
	return g.snapshot(e), true
}

// State returns the resolution state of the named node.
func (g *Graph) State(name string) (State, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[name]
	if !ok {
		return Unresolved, false
	}
	return e.state, true
}

// Dependencies returns the sorted names the node requires.
func (g *Graph) Dependencies(name string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[name]
	if !ok {
		return nil, &resource.DanglingReferenceError{Missing: name}
	}
	return sets.List(e.deps), nil
}

// Names returns all registered names in sorted order.
func (g *Graph) Names() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, 0, len(g.entries))
	for name := range g.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered nodes.
func (g *Graph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}

// Pending returns the sorted names of nodes that are not resolved.
func (g *Graph) Pending() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var pending []string
	for name, e := range g.entries {
		if e.state != Resolved {
			pending = append(pending, name)
		}
	}
	slices.Sort(pending)
	return pending
}

func (g *Graph) snapshot(e *entry) *resource.Node {
	n := e.node.Clone()
	n.DependsOn = sets.List(e.deps)
	return n
}

type reader struct {
	g    *Graph
	self *entry
}

func (r *reader) Attribute(name, key string) (any, error) {
	if !r.self.deps.Has(name) {
		return nil, fmt.Errorf("read of %s.%s: %q is not a declared dependency of %q", name, key, name, r.self.node.Name)
	}
	return r.g.attribute(name, key)
}

func firstOr(s []string, def string) string {
	if len(s) == 0 {
		return def
	}
	return s[0]
}
