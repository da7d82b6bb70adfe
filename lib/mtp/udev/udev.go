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

// Package udev implements the device enumeration backend on top of the udev
// device database.
//
// MTP devices are recognized by the ID_MTP_DEVICE property which the libmtp
// udev rules attach to every device libmtp knows about or probes as MTP.
package udev

import (
	"strconv"

	"github.com/gravitational/mtpfs-probe/lib/mtp"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// Name identifies this backend
const Name = "udev"

const (
	subsystemUSB       = "usb"
	devtypeUSBDevice   = "usb_device"
	propDevtype        = "DEVTYPE"
	propMTPDevice      = "ID_MTP_DEVICE"
	propBusnum         = "BUSNUM"
	propDevnum         = "DEVNUM"
	propVendorID       = "ID_VENDOR_ID"
	propModelID        = "ID_MODEL_ID"
	propVendorDatabase = "ID_VENDOR_FROM_DATABASE"
	propModelDatabase  = "ID_MODEL_FROM_DATABASE"
)

// properties is the subset of the udev device interface used to
// describe a raw device
type properties interface {
	PropertyValue(name string) string
}

// rawDevice converts the udev device into a raw device.
// Vendor and product names come from the hardware database and are left
// unset if the database has no entry for the device.
func rawDevice(device properties) (*mtp.RawDevice, error) {
	bus, err := strconv.ParseUint(device.PropertyValue(propBusnum), 10, 32)
	if err != nil {
		return nil, trace.BadParameter("invalid %v: %v", propBusnum, err)
	}
	dev, err := strconv.ParseUint(device.PropertyValue(propDevnum), 10, 8)
	if err != nil {
		return nil, trace.BadParameter("invalid %v: %v", propDevnum, err)
	}
	result := &mtp.RawDevice{
		BusLocation: uint32(bus),
		Devnum:      uint8(dev),
		VendorID:    parseID(device.PropertyValue(propVendorID)),
		ProductID:   parseID(device.PropertyValue(propModelID)),
	}
	if vendor := device.PropertyValue(propVendorDatabase); vendor != "" {
		result.Vendor = mtp.String(vendor)
	}
	if product := device.PropertyValue(propModelDatabase); product != "" {
		result.Product = mtp.String(product)
	}
	return result, nil
}

// isMTPDevice returns true if the device is a whole USB device
// (not one of its interfaces) tagged as MTP by the libmtp rules
func isMTPDevice(device properties) bool {
	return device.PropertyValue(propDevtype) == devtypeUSBDevice &&
		device.PropertyValue(propMTPDevice) == "1"
}

// rawDevices converts the list of udev devices skipping the ones
// that are not MTP devices or cannot be described
func rawDevices(devices []properties, logger log.FieldLogger) []mtp.RawDevice {
	result := make([]mtp.RawDevice, 0, len(devices))
	for _, device := range devices {
		if !isMTPDevice(device) {
			continue
		}
		raw, err := rawDevice(device)
		if err != nil {
			logger.WithError(err).Debug("Skip device.")
			continue
		}
		result = append(result, *raw)
	}
	return result
}

func parseID(s string) uint16 {
	id, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0
	}
	return uint16(id)
}
