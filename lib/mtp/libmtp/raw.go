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

/*
#include <stdlib.h>
#include <libmtp.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gravitational/mtpfs-probe/lib/mtp"
)

// rawDevices converts the array of count raw devices returned by libmtp.
// Names libmtp does not know are left unset
func rawDevices(rawdevs *C.LIBMTP_raw_device_t, count int) []mtp.RawDevice {
	if rawdevs == nil || count <= 0 {
		return nil
	}
	entries := unsafe.Slice(rawdevs, count)
	devices := make([]mtp.RawDevice, 0, len(entries))
	for i := range entries {
		devices = append(devices, rawDevice(&entries[i]))
	}
	return devices
}

func rawDevice(entry *C.LIBMTP_raw_device_t) mtp.RawDevice {
	return mtp.RawDevice{
		BusLocation: uint32(entry.bus_location),
		Devnum:      uint8(entry.devnum),
		VendorID:    uint16(entry.device_entry.vendor_id),
		ProductID:   uint16(entry.device_entry.product_id),
		Vendor:      goString(entry.device_entry.vendor),
		Product:     goString(entry.device_entry.product),
	}
}

func goString(s *C.char) *string {
	if s == nil {
		return nil
	}
	return mtp.String(C.GoString(s))
}

// newRawDeviceArray allocates a libmtp raw device array describing devices.
// The array must be released with freeRawDeviceArray.
// Test files cannot use cgo so the package tests build arrays with it
func newRawDeviceArray(devices []mtp.RawDevice) (*C.LIBMTP_raw_device_t, int) {
	if len(devices) == 0 {
		return nil, 0
	}
	rawdevs := (*C.LIBMTP_raw_device_t)(C.calloc(C.size_t(len(devices)), C.sizeof_LIBMTP_raw_device_t))
	entries := unsafe.Slice(rawdevs, len(devices))
	for i, device := range devices {
		entries[i].bus_location = C.uint32_t(device.BusLocation)
		entries[i].devnum = C.uint8_t(device.Devnum)
		entries[i].device_entry.vendor_id = C.uint16_t(device.VendorID)
		entries[i].device_entry.product_id = C.uint16_t(device.ProductID)
		if device.Vendor != nil {
			entries[i].device_entry.vendor = C.CString(*device.Vendor)
		}
		if device.Product != nil {
			entries[i].device_entry.product = C.CString(*device.Product)
		}
	}
	return rawdevs, len(devices)
}

func freeRawDeviceArray(rawdevs *C.LIBMTP_raw_device_t, count int) {
	if rawdevs == nil {
		return
	}
	for _, entry := range unsafe.Slice(rawdevs, count) {
		C.free(unsafe.Pointer(entry.device_entry.vendor))
		C.free(unsafe.Pointer(entry.device_entry.product))
	}
	C.free(unsafe.Pointer(rawdevs))
}
