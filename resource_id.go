// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "strconv"

// ResourceID identifies one registration within a backend instance.
// It is only meaningful to the backend that returned it.
// The zero value names no resource
type ResourceID struct {
	n uint64
}

// IsValid reports whether id was handed out by a backend
func (id ResourceID) IsValid() bool {
	return id.n != 0
}

func (id ResourceID) String() string {
	if !id.IsValid() {
		return "resource#none"
	}
	return "resource#" + strconv.FormatUint(id.n, 10)
}

// token is the 64-bit value stored in the native registration.
func (id ResourceID) token() uint64 {
	return id.n
}

// wakerToken never collides with a generated id
const wakerToken = ^uint64(0)

// resourceIDGenerator hands out ids starting from one, zero being the
// invalid id. It never rewinds, so an id seen in a stale event batch
// can not be confused with a later registration
type resourceIDGenerator struct {
	n uint64
}

func (g *resourceIDGenerator) next() ResourceID {
	g.n++
	return ResourceID{n: g.n}
}
