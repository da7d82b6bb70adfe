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

// Package probe finds the MTP device attached at a given ugen device path
// and reports its vendor and product names.
package probe

import (
	"context"
	"fmt"
	"io"

	"github.com/gravitational/mtpfs-probe/lib/constants"
	"github.com/gravitational/mtpfs-probe/lib/mtp"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// Config defines the probe configuration
type Config struct {
	// DevicePath is the path of the device to probe, e.g. /dev/ugen0.2
	DevicePath string
	// Library enumerates the attached devices
	Library mtp.Library
	// Out receives a line for every matching device
	Out io.Writer
	// FieldLogger is used for logging
	log.FieldLogger
}

// CheckAndSetDefaults validates the configuration and fills in defaults
func (r *Config) CheckAndSetDefaults() error {
	if r.Library == nil {
		return trace.BadParameter("missing enumeration library")
	}
	if r.Out == nil {
		return trace.BadParameter("missing output writer")
	}
	if r.FieldLogger == nil {
		r.FieldLogger = log.WithField(trace.Component, "probe")
	}
	return nil
}

// Run looks up the device at config.DevicePath and prints every enumerated
// device found at that location.
// Returns the number of matches.
// Returns trace.BadParameter if the device path is invalid and
// trace.NotFound if no device matched
func Run(ctx context.Context, config Config) (matches int, err error) {
	if err := config.CheckAndSetDefaults(); err != nil {
		return 0, trace.Wrap(err)
	}
	target, err := ParseDevicePath(config.DevicePath)
	if err != nil {
		return 0, trace.Wrap(err)
	}
	logger := config.WithField("target", target)

	if err := config.Library.Init(); err != nil {
		return 0, trace.Wrap(err, "failed to initialize enumeration library")
	}

	devices, err := config.Library.DetectRawDevices(ctx)
	if err != nil {
		return 0, trace.Wrap(err)
	}
	defer devices.Release()
	logger.WithField("count", devices.Len()).Debug("Enumerated raw devices.")

	matches, err = scan(devices, *target, config.Out)
	if err != nil {
		return matches, trace.Wrap(err)
	}
	if matches == 0 {
		return 0, trace.NotFound("no MTP device at %v", target)
	}
	return matches, nil
}

// scan writes a line for every device in the list located at target.
// Lines are indexed by the device position in the whole list
func scan(devices *mtp.RawDeviceList, target Target, w io.Writer) (matches int, err error) {
	for i, device := range devices.Devices {
		if !device.Matches(target.Bus, target.Device) {
			continue
		}
		if _, err := io.WriteString(w, FormatMatch(i+1, device)); err != nil {
			return matches, trace.ConvertSystemError(err)
		}
		matches++
	}
	return matches, nil
}

// FormatMatch formats the output line for the device at the given
// 1-based index
func FormatMatch(index int, device mtp.RawDevice) string {
	return fmt.Sprintf("%d: %s %s\n", index,
		mtp.StringValue(device.Vendor, constants.UnknownVendor),
		mtp.StringValue(device.Product, constants.UnknownProduct))
}
