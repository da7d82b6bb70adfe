/*
Copyright 2018 Gravitational, Inc.

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
	"io"
	"strconv"

	"github.com/gravitational/trace"
)

// ExitError is an error that describes the event of a process exiting with a non-zero value.
type ExitError struct {
	// Code is the process exit code
	Code int
}

// Error returns the text of this error
func (err ExitError) Error() string {
	return "exit status " + strconv.FormatInt(int64(err.Code), 10)
}

// NewExitError returns a new error that terminates the process with the given code
func NewExitError(code int) error {
	return trace.Wrap(&ExitError{Code: code})
}

// ExitStatusFromError returns the exit status from the specified error.
// Returns 0 for nil error, the exit code for ExitError and 1 for any other error
func ExitStatusFromError(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := trace.Unwrap(err).(*ExitError); ok {
		return exitErr.Code
	}
	return 1
}

// NopCloser returns a closer that does nothing
func NopCloser() io.Closer {
	return nopCloser{}
}

// CloserFor returns the io.Closer of v if v implements it,
// otherwise a closer that does nothing
func CloserFor(v interface{}) io.Closer {
	if closer, ok := v.(io.Closer); ok {
		return closer
	}
	return NopCloser()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
