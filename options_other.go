// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix && !linux

package reactor

const defaultBackend = BackendPoll

// NewEpoll is only available on linux
func NewEpoll(n int) (Poll, error) {
	return nil, ErrNotSupported
}
