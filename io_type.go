// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

// IoType is an interest set, or the readiness reported for one resource.
// At least one of Read and Write must be set for it to be registrable
type IoType struct {
	Read  bool
	Write bool
}

var (
	Readable  = IoType{Read: true}
	Writable  = IoType{Write: true}
	ReadWrite = IoType{Read: true, Write: true}
)

// IsEmpty reports whether neither direction is set
func (t IoType) IsEmpty() bool {
	return !t.Read && !t.Write
}

func (t IoType) String() string {
	switch {
	case t.Read && t.Write:
		return "read|write"
	case t.Read:
		return "read"
	case t.Write:
		return "write"
	}
	return "none"
}

// merge folds a hang-up or error condition into the directions of interest.
// The consumer then attempts the I/O and observes the failure there
func (t IoType) merge(interest IoType) IoType {
	return IoType{Read: t.Read || interest.Read, Write: t.Write || interest.Write}
}
