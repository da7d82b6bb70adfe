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

package udev

import (
	"context"

	"github.com/gravitational/mtpfs-probe/lib/mtp"
	"github.com/gravitational/mtpfs-probe/lib/utils"

	libudev "github.com/gravitational/go-udev"
	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// New returns a new udev backend
func New(config mtp.Config) *Library {
	config.CheckAndSetDefaults()
	return &Library{
		config: config,
		log:    config.WithField(trace.Component, Name),
	}
}

// Library enumerates raw MTP devices from the udev device database
type Library struct {
	config mtp.Config
	log    log.FieldLogger
	udev   libudev.Udev
}

// Init is a no-op: the udev context is created lazily
func (r *Library) Init() error {
	return nil
}

// DetectRawDevices lists the USB devices udev has tagged as MTP devices
func (r *Library) DetectRawDevices(ctx context.Context) (*mtp.RawDeviceList, error) {
	if err := ctx.Err(); err != nil {
		return nil, trace.Wrap(err)
	}
	var devices []*libudev.Device
	enumerate := func() (err error) {
		devices, err = r.enumerate()
		return trace.Wrap(err)
	}
	var err error
	if r.config.Quiet {
		err = utils.SilenceStderr(enumerate)
	} else {
		err = enumerate()
	}
	if err != nil {
		return nil, trace.Wrap(err, "failed to enumerate available devices")
	}

	props := make([]properties, 0, len(devices))
	for _, device := range devices {
		r.log.WithField("syspath", device.Syspath()).Debug("Found device.")
		props = append(props, device)
	}
	return mtp.NewRawDeviceList(rawDevices(props, r.log), nil), nil
}

func (r *Library) enumerate() ([]*libudev.Device, error) {
	enum := r.udev.NewEnumerate()
	if enum == nil {
		return nil, trace.BadParameter("failed to create udev enumerator")
	}
	if err := enum.AddMatchSubsystem(subsystemUSB); err != nil {
		return nil, trace.Wrap(err)
	}
	// Property matches are OR'ed by libudev, so DEVTYPE is checked
	// by rawDevices instead
	if err := enum.AddMatchProperty(propMTPDevice, "1"); err != nil {
		return nil, trace.Wrap(err)
	}
	if err := enum.AddMatchIsInitialized(); err != nil {
		return nil, trace.Wrap(err)
	}
	devices, err := enum.Devices()
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return devices, nil
}
