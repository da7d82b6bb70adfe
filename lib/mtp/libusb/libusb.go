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

// Package libusb implements the device enumeration backend on top of libusb.
//
// Devices are never opened: a device is reported if one of its interfaces
// advertises the still image (PTP) class which MTP devices implement.
package libusb

import (
	"context"
	"fmt"
	"sync"

	"github.com/gravitational/mtpfs-probe/lib/mtp"
	"github.com/gravitational/mtpfs-probe/lib/utils"

	"github.com/google/gousb"
	"github.com/google/gousb/usbid"
	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// Name identifies this backend
const Name = "libusb"

const (
	subclassStillImage = gousb.Class(0x01)
	protocolPTP        = gousb.Protocol(0x01)
)

// New returns a new libusb backend
func New(config mtp.Config) *Library {
	config.CheckAndSetDefaults()
	return &Library{
		config:     config,
		log:        config.WithField(trace.Component, Name),
		vendors:    usbid.Vendors,
		newContext: gousb.NewContext,
	}
}

// Library enumerates raw MTP devices with libusb
type Library struct {
	config mtp.Config
	log    log.FieldLogger
	// vendors names vendors and products by USB ID
	vendors map[gousb.ID]*usbid.Vendor
	// newContext creates the libusb context.
	// gousb.NewContext panics if libusb fails to initialize
	newContext func() *gousb.Context

	once    sync.Once
	ctx     *gousb.Context
	initErr error
}

// Init creates the libusb context.
// The result of the first call is returned on subsequent calls
func (r *Library) Init() error {
	r.once.Do(func() {
		r.ctx, r.initErr = r.initContext()
	})
	return r.initErr
}

func (r *Library) initContext() (ctx *gousb.Context, err error) {
	defer func() {
		if p := recover(); p != nil {
			ctx = nil
			err = initError(p)
		}
	}()
	ctx = r.newContext()
	if r.config.Quiet {
		ctx.Debug(0)
	}
	return ctx, nil
}

// initError converts the value of a libusb initialization panic
func initError(p interface{}) error {
	if usbErr, ok := p.(gousb.Error); ok {
		return mtp.NewLibraryError(Name, int(usbErr), usbErr.Error())
	}
	return mtp.NewLibraryError(Name, int(gousb.ErrorOther), fmt.Sprint(p))
}

// Close releases the libusb context
func (r *Library) Close() error {
	if r.ctx == nil {
		return nil
	}
	return trace.Wrap(r.ctx.Close())
}

// DetectRawDevices lists the attached USB devices that implement PTP
func (r *Library) DetectRawDevices(ctx context.Context) (*mtp.RawDeviceList, error) {
	if err := ctx.Err(); err != nil {
		return nil, trace.Wrap(err)
	}
	if r.ctx == nil {
		return nil, trace.BadParameter("libusb backend is not initialized")
	}
	var devices []mtp.RawDevice
	scan := func() error {
		// The opener never requests a device to be opened so the
		// returned device list is always empty
		_, err := r.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
			if !hasPTPInterface(desc) {
				return false
			}
			device := r.rawDevice(desc)
			r.log.WithField("device", device).Debug("Found MTP device.")
			devices = append(devices, device)
			return false
		})
		return trace.Wrap(err)
	}
	var err error
	if r.config.Quiet {
		err = utils.SilenceStderr(scan)
	} else {
		err = scan()
	}
	if err != nil {
		if usbErr, ok := trace.Unwrap(err).(gousb.Error); ok {
			return nil, mtp.NewLibraryError(Name, int(usbErr), usbErr.Error())
		}
		return nil, trace.Wrap(err)
	}
	return mtp.NewRawDeviceList(devices, nil), nil
}

func (r *Library) rawDevice(desc *gousb.DeviceDesc) mtp.RawDevice {
	device := mtp.RawDevice{
		BusLocation: uint32(desc.Bus),
		Devnum:      uint8(desc.Address),
		VendorID:    uint16(desc.Vendor),
		ProductID:   uint16(desc.Product),
	}
	vendor, ok := r.vendors[desc.Vendor]
	if !ok || vendor == nil {
		return device
	}
	device.Vendor = mtp.String(vendor.Name)
	if product, ok := vendor.Product[desc.Product]; ok && product != nil {
		device.Product = mtp.String(product.Name)
	}
	return device
}

func hasPTPInterface(desc *gousb.DeviceDesc) bool {
	for _, config := range desc.Configs {
		for _, iface := range config.Interfaces {
			for _, alt := range iface.AltSettings {
				if alt.Class == gousb.ClassPTP &&
					alt.SubClass == subclassStillImage &&
					alt.Protocol == protocolPTP {
					return true
				}
			}
		}
	}
	return false
}
