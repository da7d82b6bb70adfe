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

package mtp

import (
	"fmt"

	"github.com/gravitational/trace"
)

// LibraryError describes a non-success status reported by an enumeration library
type LibraryError struct {
	// Backend names the library that reported the error
	Backend string
	// Code is the library-specific status code
	Code int
	// Message describes the status code
	Message string
}

// Error returns the text of this error
func (r *LibraryError) Error() string {
	return fmt.Sprintf("%v: %v (status %v)", r.Backend, r.Message, r.Code)
}

// NewLibraryError returns a new error for the specified status code
func NewLibraryError(backend string, code int, message string) error {
	return trace.Wrap(&LibraryError{
		Backend: backend,
		Code:    code,
		Message: message,
	})
}

// IsLibraryError returns true if err was reported by an enumeration library
func IsLibraryError(err error) bool {
	_, ok := trace.Unwrap(err).(*LibraryError)
	return ok
}
