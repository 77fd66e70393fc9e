// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

// resource is one live registration. fd is borrowed from the caller
// and is never closed here
type resource struct {
	id       ResourceID
	fd       int
	interest IoType
	events   uint32
}

// resourceTable is keyed by id rather than indexed by it,
// so ids that are never reused do not grow the table
type resourceTable struct {
	ids resourceIDGenerator
	m   map[ResourceID]*resource
}

func newResourceTable() resourceTable {
	return resourceTable{m: make(map[ResourceID]*resource)}
}

func (t *resourceTable) alloc() ResourceID {
	return t.ids.next()
}

func (t *resourceTable) insert(res *resource) {
	t.m[res.id] = res
}

func (t *resourceTable) lookup(id ResourceID) (*resource, bool) {
	res, ok := t.m[id]
	return res, ok
}

func (t *resourceTable) remove(id ResourceID) (*resource, bool) {
	res, ok := t.m[id]
	if ok {
		delete(t.m, id)
	}
	return res, ok
}

func (t *resourceTable) len() int {
	return len(t.m)
}
