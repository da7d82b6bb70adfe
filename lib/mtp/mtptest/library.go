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

// Package mtptest provides an in-memory enumeration library for tests
package mtptest

import (
	"context"

	"github.com/gravitational/mtpfs-probe/lib/mtp"
)

// Library is an mtp.Library returning a fixed set of devices.
// It records the calls made to it
type Library struct {
	// Devices is returned from every enumeration
	Devices []mtp.RawDevice
	// InitErr is returned from Init
	InitErr error
	// DetectErr is returned from DetectRawDevices
	DetectErr error

	// Inits counts Init calls
	Inits int
	// Detects counts DetectRawDevices calls
	Detects int
	// Releases counts the released device lists
	Releases int
}

// Init records the call and returns InitErr
func (r *Library) Init() error {
	r.Inits++
	return r.InitErr
}

// DetectRawDevices returns a copy of Devices or DetectErr
func (r *Library) DetectRawDevices(context.Context) (*mtp.RawDeviceList, error) {
	r.Detects++
	if r.DetectErr != nil {
		return nil, r.DetectErr
	}
	devices := make([]mtp.RawDevice, len(r.Devices))
	copy(devices, r.Devices)
	return mtp.NewRawDeviceList(devices, func() { r.Releases++ }), nil
}

// Outstanding returns the number of enumerations not yet released
func (r *Library) Outstanding() int {
	if r.DetectErr != nil {
		return 0
	}
	return r.Detects - r.Releases
}
