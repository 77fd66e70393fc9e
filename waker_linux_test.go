//go:build linux

package reactor

import "testing"

func TestEventfd_ReadWrite(t *testing.T) {
	t.Run("multiple write one read", func(t *testing.T) {
		evt, err := newEventfd()
		if err != nil {
			t.Errorf("new eventfd: %v", err)
			return
		}
		defer evt.Close()
		for _, v := range []uint64{10, 20, 40} {
			err = evt.WriteUint64(v)
			if err != nil {
				t.Errorf("write eventfd: %v", err)
				return
			}
		}
		val, err := evt.ReadUint64()
		if err != nil {
			t.Errorf("read eventfd: %v", err)
			return
		}
		if val != 70 {
			t.Errorf("read expected 70 but got %d", val)
			return
		}
		val, err = evt.ReadUint64()
		if err != ErrTemporarilyUnavailable {
			t.Errorf("read eventfd expected EAGAIN but got: %d", val)
			return
		}
	})

	t.Run("drain empty", func(t *testing.T) {
		evt, err := newEventfd()
		if err != nil {
			t.Errorf("new eventfd: %v", err)
			return
		}
		defer evt.Close()
		err = evt.drain()
		if err != nil {
			t.Errorf("drain empty eventfd: %v", err)
			return
		}
		err = evt.notify()
		if err != nil {
			t.Errorf("notify eventfd: %v", err)
			return
		}
		err = evt.drain()
		if err != nil {
			t.Errorf("drain eventfd: %v", err)
			return
		}
		_, err = evt.ReadUint64()
		if err != ErrTemporarilyUnavailable {
			t.Errorf("eventfd expected empty after drain but got %v", err)
			return
		}
	})
}
