//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

/*
Copyright 2020 Gravitational, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package utils

import (
	"os"
	"sync"

	"github.com/gravitational/trace"
	"golang.org/x/sys/unix"
)

// SilenceStderr runs fn with the process standard error descriptor pointed
// at the null device and restores it once fn returns.
//
// The redirection happens on the file descriptor level so it also covers
// output written by C libraries linked into the process.
// The descriptor is shared by all goroutines: anything written to stderr
// while fn runs is discarded.
func SilenceStderr(fn func() error) error {
	return redirectFd(unix.Stderr, os.DevNull, fn)
}

func redirectFd(fd int, path string, fn func() error) (err error) {
	redirectMu.Lock()
	defer redirectMu.Unlock()

	saved, err := unix.Dup(fd)
	if err != nil {
		return trace.ConvertSystemError(err)
	}
	defer unix.Close(saved)

	target, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return trace.ConvertSystemError(err)
	}
	if err := unix.Dup2(target, fd); err != nil {
		unix.Close(target)
		return trace.ConvertSystemError(err)
	}
	unix.Close(target)

	defer func() {
		if errRestore := unix.Dup2(saved, fd); errRestore != nil && err == nil {
			err = trace.ConvertSystemError(errRestore)
		}
	}()
	return fn()
}

var redirectMu sync.Mutex
