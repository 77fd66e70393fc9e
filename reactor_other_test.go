//go:build unix && !linux

package reactor

func registeredIoType(rc *reactor, id ResourceID) (IoType, error) {
	if ps, ok := rc.p.(*pollSet); ok {
		return pollSetIoType(ps, id)
	}
	return IoType{}, ErrNotSupported
}
