// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

// Options represents the construction parameters of a reactor
type Options struct {
	// Backend selects the native mechanism. BackendDefault resolves to
	// epoll on linux and poll(2) on other unix systems
	Backend Backend
	// EventsNum is the number of native events fetched per wait. Default value is 256
	EventsNum int
}

var defaultOptions = Options{
	Backend:   BackendDefault,
	EventsNum: pollerDefaultEventsNum,
}

// WithBackend selects the native mechanism
func WithBackend(backend Backend) func(option *Options) {
	return func(option *Options) {
		option.Backend = backend
	}
}

// WithEventsNum sets the per wait native event buffer size
func WithEventsNum(n int) func(option *Options) {
	return func(option *Options) {
		option.EventsNum = n
	}
}

// New creates and returns a new reactor with given options
func New(options ...func(option *Options)) (Poll, error) {
	opts := defaultOptions
	for _, fn := range options {
		fn(&opts)
	}
	if opts.EventsNum < 1 {
		return nil, ErrInvalidParam
	}
	backend := opts.Backend
	if backend == BackendDefault {
		backend = defaultBackend
	}
	switch backend {
	case BackendEpoll:
		return NewEpoll(opts.EventsNum)
	case BackendPoll:
		return NewPoller(opts.EventsNum)
	}

	return nil, ErrInvalidParam
}
