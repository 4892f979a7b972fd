// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech

// Dependency is a name which a pending call needs but which was never
// produced.
type Dependency struct {
	Producer string // what the blocked call would produce
	Missing  string
	Line     int
}

type pending struct {
	call  *Call
	deps  []string
	prods []string
	unmet int
	done  bool
}

// Sched defers calls until the names they depend on are known.
//
// A call is dispatched as soon as all its dependencies are known, after
// which the names it produces become known, possibly making other calls
// ready.  Calls which become ready together are dispatched in the order
// in which they were deferred.  Dispatch uses an explicit queue, so deep
// dependency chains do not grow the stack.
type Sched struct {
	dispatch func(c *Call) error
	known    map[string]bool
	calls    []pending
	waiters  map[string][]int
	queue    []int
	running  bool
	npending int
	err      error
}

// NewSched creates a scheduler which dispatches ready calls with
// dispatch.
func NewSched(dispatch func(c *Call) error) *Sched {
	return &Sched{
		dispatch: dispatch,
		known:    make(map[string]bool),
		waiters:  make(map[string][]int)}
}

// IsKnown returns whether name is known.
func (s *Sched) IsKnown(name string) bool {
	return s.known[name]
}

// DeclareKnown makes name known, dispatching the calls which become
// ready.  It returns the first dispatch error, if any.
func (s *Sched) DeclareKnown(name string) error {
	s.learn(name)
	return s.run()
}

// Defer registers c, which needs deps and produces prods.  If all deps
// are known, c is dispatched before Defer returns.  Duplicate
// dependencies count once.
func (s *Sched) Defer(deps, prods []string, c *Call) error {
	id := len(s.calls)
	s.calls = append(s.calls, pending{call: c, deps: dedup(deps), prods: prods})
	p := &s.calls[id]
	for _, d := range p.deps {
		if s.known[d] {
			continue
		}
		p.unmet++
		s.waiters[d] = append(s.waiters[d], id)
	}
	s.npending++
	if p.unmet == 0 {
		s.queue = append(s.queue, id)
	}
	return s.run()
}

func dedup(ns []string) []string {
	if len(ns) < 2 {
		return ns
	}
	res := make([]string, 0, len(ns))
	for i, n := range ns {
		dup := false
		for _, m := range ns[:i] {
			if m == n {
				dup = true
				break
			}
		}
		if !dup {
			res = append(res, n)
		}
	}
	return res
}

func (s *Sched) learn(name string) {
	if s.known[name] {
		return
	}
	s.known[name] = true
	for _, id := range s.waiters[name] {
		p := &s.calls[id]
		p.unmet--
		if p.unmet == 0 {
			s.queue = append(s.queue, id)
		}
	}
	delete(s.waiters, name)
}

func (s *Sched) run() error {
	if s.running {
		return s.err
	}
	s.running = true
	defer func() { s.running = false }()
	for len(s.queue) > 0 && s.err == nil {
		id := s.queue[0]
		s.queue = s.queue[1:]
		p := &s.calls[id]
		if p.done {
			panic("gtech: call dispatched twice")
		}
		p.done = true
		s.npending--
		if err := s.dispatch(p.call); err != nil {
			s.err = err
			break
		}
		for _, n := range p.prods {
			s.learn(n)
		}
	}
	return s.err
}

// Pending returns the number of calls which have not been dispatched.
func (s *Sched) Pending() int {
	return s.npending
}

// Unresolved returns, for every pending call in the order of deferral,
// its dependencies which are not known.
func (s *Sched) Unresolved() []Dependency {
	var res []Dependency
	for i := range s.calls {
		p := &s.calls[i]
		if p.done {
			continue
		}
		for _, d := range p.deps {
			if s.known[d] {
				continue
			}
			res = append(res, Dependency{Producer: p.call.Producer(), Missing: d, Line: p.call.Line})
		}
	}
	return res
}
