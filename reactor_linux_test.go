//go:build linux

package reactor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// registeredIoType reads the interest the kernel holds for id
func registeredIoType(rc *reactor, id ResourceID) (IoType, error) {
	switch native := rc.p.(type) {
	case *epoll:
		res, ok := rc.table.lookup(id)
		if !ok {
			return IoType{}, ErrUnknownResource
		}
		events, err := epollRegisteredEvents(native.fd, res.fd)
		if err != nil {
			return IoType{}, err
		}
		// epoll_ctl always adds EPOLLERR and EPOLLHUP
		return IoTypeFromEpollEvents(events &^ (unix.EPOLLERR | unix.EPOLLHUP))
	case *pollSet:
		return pollSetIoType(native, id)
	}
	return IoType{}, ErrNotSupported
}

// epollRegisteredEvents parses the "tfd: N events: X" line of /proc/self/fdinfo/<epfd>
func epollRegisteredEvents(epfd, fd int) (uint32, error) {
	b, err := os.ReadFile(fmt.Sprintf("/proc/self/fdinfo/%d", epfd))
	if err != nil {
		return 0, err
	}
	for _, line := range strings.Split(string(b), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "tfd:" || fields[2] != "events:" {
			continue
		}
		if fields[1] != strconv.Itoa(fd) {
			continue
		}
		events, err := strconv.ParseUint(fields[3], 16, 32)
		if err != nil {
			return 0, err
		}
		return uint32(events), nil
	}
	return 0, fmt.Errorf("fd=%d not in epoll fdinfo: %w", fd, ErrNotRegistered)
}
