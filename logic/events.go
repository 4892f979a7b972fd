// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/lnet/z"

// Type Events holds the observers of a Storage.  Observers are called
// synchronously, in registration order.
type Events struct {
	onAdd    []*Observer
	onDelete []*Observer
}

// Type Observer is a registered callback, returned so that it can be
// released.
type Observer struct {
	fn  func(n z.Node)
	del bool
}

// OnAdd registers fn to be called with every node allocated in the
// storage.
func (e *Events) OnAdd(fn func(n z.Node)) *Observer {
	o := &Observer{fn: fn}
	e.onAdd = append(e.onAdd, o)
	return o
}

// OnDelete registers fn to be called with every node which is killed.
func (e *Events) OnDelete(fn func(n z.Node)) *Observer {
	o := &Observer{fn: fn, del: true}
	e.onDelete = append(e.onDelete, o)
	return o
}

// Release unregisters o.  Releasing an observer twice has no effect.
func (e *Events) Release(o *Observer) {
	if o.del {
		e.onDelete = remove(e.onDelete, o)
		return
	}
	e.onAdd = remove(e.onAdd, o)
}

// Len returns the number of registered observers.
func (e *Events) Len() int {
	return len(e.onAdd) + len(e.onDelete)
}

func remove(os []*Observer, o *Observer) []*Observer {
	for i, p := range os {
		if p == o {
			copy(os[i:], os[i+1:])
			os[len(os)-1] = nil
			return os[:len(os)-1]
		}
	}
	return os
}

func (e *Events) added(n z.Node) {
	for _, o := range e.onAdd {
		o.fn(n)
	}
}

func (e *Events) deleted(n z.Node) {
	for _, o := range e.onDelete {
		o.fn(n)
	}
}
