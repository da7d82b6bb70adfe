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

// Package mtp defines the raw device model shared by the MTP device
// enumeration backends and the contract every backend implements.
//
// A backend is an external library or system API that knows how to find
// MTP devices attached to the host. This package does not speak USB or MTP
// itself.
package mtp

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Library is a device enumeration service
type Library interface {
	// Init performs the process-wide setup of the library.
	// It must be called once before DetectRawDevices, repeated calls are no-ops.
	Init() error
	// DetectRawDevices returns a snapshot of the raw MTP devices currently
	// attached to the host. The caller owns the returned list and must
	// release it with Release once done.
	DetectRawDevices(ctx context.Context) (*RawDeviceList, error)
}

// Config defines the configuration common to all backends
type Config struct {
	// Quiet silences the library's own diagnostic output
	Quiet bool
	// FieldLogger is used for backend-specific logging
	log.FieldLogger
}

// CheckAndSetDefaults validates the configuration and fills in defaults
func (r *Config) CheckAndSetDefaults() {
	if r.FieldLogger == nil {
		r.FieldLogger = log.StandardLogger()
	}
}

// RawDevice describes a single raw device as reported by the library
type RawDevice struct {
	// BusLocation is the number of the USB bus the device is attached to
	BusLocation uint32
	// Devnum is the device number on the bus
	Devnum uint8
	// VendorID is the USB vendor ID
	VendorID uint16
	// ProductID is the USB product ID
	ProductID uint16
	// Vendor optionally names the device vendor
	Vendor *string
	// Product optionally names the device product
	Product *string
}

// Matches returns true if this device is located at the given bus and device number.
// Numbers outside of the range of the device fields never match
func (r RawDevice) Matches(bus, dev uint64) bool {
	return uint64(r.BusLocation) == bus && uint64(r.Devnum) == dev
}

// String returns a textual representation of this device
func (r RawDevice) String() string {
	return fmt.Sprintf("RawDevice(bus=%v, dev=%v, id=%04x:%04x, vendor=%v, product=%v)",
		r.BusLocation, r.Devnum, r.VendorID, r.ProductID,
		StringValue(r.Vendor, "<none>"), StringValue(r.Product, "<none>"))
}

// NewRawDeviceList returns a new list for the specified devices.
// release, if not nil, is invoked exactly once to free the list's backing storage.
func NewRawDeviceList(devices []RawDevice, release func()) *RawDeviceList {
	return &RawDeviceList{
		Devices: devices,
		release: release,
	}
}

// RawDeviceList is the result of a single enumeration call
type RawDeviceList struct {
	// Devices lists devices in enumeration order
	Devices []RawDevice

	once    sync.Once
	release func()
}

// Len returns the number of devices in the list
func (r *RawDeviceList) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Devices)
}

// Release frees the list's backing storage.
// The list must not be used after Release.
func (r *RawDeviceList) Release() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		if r.release != nil {
			r.release()
		}
		r.Devices = nil
	})
}

// String returns a pointer to a copy of the given value
func String(s string) *string {
	return &s
}

// StringValue returns the value s points to or placeholder if s is nil
func StringValue(s *string, placeholder string) string {
	if s == nil {
		return placeholder
	}
	return *s
}
