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

package probe

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gravitational/trace"
)

// Target identifies a USB device by its location
type Target struct {
	// Bus is the USB bus number
	Bus uint64
	// Device is the device number on the bus.
	// It is not limited to the range of USB addresses: a number
	// no device can have is valid and simply matches nothing
	Device uint64
}

// String returns the device path for this target
func (r Target) String() string {
	return fmt.Sprintf("/dev/ugen%v.%v", r.Bus, r.Device)
}

// ParseDevicePath parses a device path of the form /dev/ugen<bus>.<device>
func ParseDevicePath(path string) (*Target, error) {
	match := devicePathRe.FindStringSubmatch(path)
	if match == nil {
		return nil, trace.BadParameter("%q is not a ugen device path", path)
	}
	bus, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return nil, trace.BadParameter("invalid bus number in %q", path)
	}
	dev, err := strconv.ParseUint(match[2], 10, 64)
	if err != nil {
		return nil, trace.BadParameter("invalid device number in %q", path)
	}
	return &Target{Bus: bus, Device: dev}, nil
}

var devicePathRe = regexp.MustCompile(`^/dev/ugen([0-9]+)\.([0-9]+)$`)
