//go:build unix

package reactor

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestIoType_Poll(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, typ := range []IoType{Readable, Writable, ReadWrite} {
			events, err := typ.PollEvents()
			if err != nil {
				t.Errorf("%v to poll: %v", typ, err)
				return
			}
			back, err := IoTypeFromPollEvents(events)
			if err != nil {
				t.Errorf("%v from poll %#x: %v", typ, events, err)
				return
			}
			if back != typ {
				t.Errorf("round trip expected %v but got %v", typ, back)
				return
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := IoType{}.PollEvents()
		if !errors.Is(err, ErrEmptyInterest) {
			t.Errorf("expected ErrEmptyInterest but got %v", err)
			return
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, events := range []int16{
			unix.POLLIN | unix.POLLPRI,
			unix.POLLOUT | unix.POLLHUP,
			unix.POLLERR,
			unix.POLLNVAL,
		} {
			_, err := IoTypeFromPollEvents(events)
			if !errors.Is(err, ErrUnsupportedFlags) {
				t.Errorf("%#x expected ErrUnsupportedFlags but got %v", events, err)
				return
			}
		}
	})

	t.Run("readiness", func(t *testing.T) {
		if r := readinessFromPoll(unix.POLLIN, ReadWrite); r != Readable {
			t.Errorf("expected %v but got %v", Readable, r)
		}
		if r := readinessFromPoll(unix.POLLHUP, Readable); r != Readable {
			t.Errorf("hup expected %v but got %v", Readable, r)
		}
		// an invalid descriptor is not readiness
		if r := readinessFromPoll(unix.POLLNVAL, ReadWrite); !r.IsEmpty() {
			t.Errorf("nval expected no readiness but got %v", r)
		}
	})
}
