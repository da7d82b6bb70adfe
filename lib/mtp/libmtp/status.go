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

package libmtp

import (
	"github.com/gravitational/mtpfs-probe/lib/mtp"

	"github.com/gravitational/trace"
)

// Values of LIBMTP_error_number_t
const (
	statusNone             = 0
	statusGeneral          = 1
	statusPTPLayer         = 2
	statusUSBLayer         = 3
	statusMemoryAllocation = 4
	statusNoDeviceAttached = 5
	statusStorageFull      = 6
	statusConnecting       = 7
	statusCancelled        = 8
)

var statusText = map[int]string{
	statusGeneral:          "general error",
	statusPTPLayer:         "PTP layer error",
	statusUSBLayer:         "USB layer error",
	statusMemoryAllocation: "memory allocation error",
	statusNoDeviceAttached: "no device attached",
	statusStorageFull:      "storage full",
	statusConnecting:       "connection error",
	statusCancelled:        "operation cancelled",
}

// statusToError converts a libmtp status code into an error.
// Returns nil for success
func statusToError(status int) error {
	switch status {
	case statusNone:
		return nil
	case statusNoDeviceAttached:
		return trace.NotFound("no MTP devices attached")
	}
	text, ok := statusText[status]
	if !ok {
		text = "unknown error"
	}
	return mtp.NewLibraryError(Name, status, text)
}
