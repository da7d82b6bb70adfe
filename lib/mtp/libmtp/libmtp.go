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

// Package libmtp implements the device enumeration backend on top of libmtp.
package libmtp

/*
#cgo pkg-config: libmtp
#include <stdlib.h>
#include <libmtp.h>
*/
import "C"

import (
	"context"
	"sync"
	"unsafe"

	"github.com/gravitational/mtpfs-probe/lib/defaults"
	"github.com/gravitational/mtpfs-probe/lib/mtp"
	"github.com/gravitational/mtpfs-probe/lib/utils"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

// Name identifies this backend
const Name = defaults.Backend

// New returns a new libmtp backend
func New(config mtp.Config) *Library {
	config.CheckAndSetDefaults()
	return &Library{
		config: config,
		log:    config.WithField(trace.Component, Name),
	}
}

// Library enumerates raw MTP devices with libmtp
type Library struct {
	config mtp.Config
	log    log.FieldLogger
}

// Init initializes libmtp.
// libmtp keeps global state so initialization happens once per process
// regardless of the number of Library instances.
func (r *Library) Init() error {
	initOnce.Do(func() {
		r.log.Debug("Initialize libmtp.")
		C.LIBMTP_Init()
	})
	if r.config.Quiet {
		C.LIBMTP_Set_Debug(C.LIBMTP_DEBUG_NONE)
	} else {
		C.LIBMTP_Set_Debug(C.LIBMTP_DEBUG_PTP | C.LIBMTP_DEBUG_USB)
	}
	return nil
}

// DetectRawDevices lists the raw MTP devices attached to the host
func (r *Library) DetectRawDevices(ctx context.Context) (*mtp.RawDeviceList, error) {
	if err := ctx.Err(); err != nil {
		return nil, trace.Wrap(err)
	}
	var (
		rawdevs  *C.LIBMTP_raw_device_t
		nrawdevs C.int
		status   C.LIBMTP_error_number_t
		detected bool
	)
	detect := func() error {
		status = C.LIBMTP_Detect_Raw_Devices(&rawdevs, &nrawdevs)
		detected = true
		return nil
	}
	if r.config.Quiet {
		if err := utils.SilenceStderr(detect); err != nil {
			r.log.WithError(err).Debug("Failed to redirect stderr.")
		}
	}
	if !detected {
		detect()
	}
	if status != C.LIBMTP_ERROR_NONE {
		if rawdevs != nil {
			C.free(unsafe.Pointer(rawdevs))
		}
		return nil, trace.Wrap(statusToError(int(status)))
	}

	release := func() {
		if rawdevs != nil {
			C.free(unsafe.Pointer(rawdevs))
		}
	}
	devices := rawDevices(rawdevs, int(nrawdevs))
	r.log.WithField("count", len(devices)).Debug("Detected raw devices.")
	return mtp.NewRawDeviceList(devices, release), nil
}

var initOnce sync.Once
