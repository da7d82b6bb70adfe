//go:build !linux
// +build !linux

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
	"runtime"

	"github.com/gravitational/mtpfs-probe/lib/mtp"

	"github.com/gravitational/trace"
)

// New returns a new udev backend
func New(config mtp.Config) *Library {
	return &Library{}
}

// Library is not available outside linux
type Library struct{}

// Init returns an error as udev is not available on this platform
func (r *Library) Init() error {
	return trace.NotImplemented("udev is not supported on %v", runtime.GOOS)
}

// DetectRawDevices returns an error as udev is not available on this platform
func (r *Library) DetectRawDevices(context.Context) (*mtp.RawDeviceList, error) {
	return nil, trace.NotImplemented("udev is not supported on %v", runtime.GOOS)
}
