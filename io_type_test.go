package reactor

import "testing"

func TestIoType_String(t *testing.T) {
	cases := map[IoType]string{
		ReadWrite: "read|write",
		Readable:  "read",
		Writable:  "write",
		{}:        "none",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%#v expected %q but got %q", typ, want, got)
		}
	}
	if !(IoType{}).IsEmpty() || Readable.IsEmpty() || Writable.IsEmpty() {
		t.Errorf("IsEmpty reported wrong value")
	}
}
