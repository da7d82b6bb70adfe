package main

import (
	"sort"

	"github.com/gravitational/mtpfs-probe/lib/mtp"
	"github.com/gravitational/mtpfs-probe/lib/mtp/libmtp"
	"github.com/gravitational/mtpfs-probe/lib/mtp/libusb"
	"github.com/gravitational/mtpfs-probe/lib/mtp/udev"

	"github.com/gravitational/trace"
)

// libraries maps backend name to the backend constructor
var libraries = map[string]func(mtp.Config) mtp.Library{
	libmtp.Name: func(config mtp.Config) mtp.Library { return libmtp.New(config) },
	udev.Name:   func(config mtp.Config) mtp.Library { return udev.New(config) },
	libusb.Name: func(config mtp.Config) mtp.Library { return libusb.New(config) },
}

// backends returns the sorted list of backend names
func backends() (names []string) {
	for name := range libraries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newLibrary creates the enumeration backend with the given name
func newLibrary(backend string, config mtp.Config) (mtp.Library, error) {
	fn, ok := libraries[backend]
	if !ok {
		return nil, trace.NotFound("unknown backend %q", backend)
	}
	return fn(config), nil
}
