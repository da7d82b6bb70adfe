package udev

import (
	"testing"

	"github.com/gravitational/mtpfs-probe/lib/mtp"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	. "gopkg.in/check.v1"
)

func TestUdev(t *testing.T) { TestingT(t) }

type UdevSuite struct{}

var _ = Suite(&UdevSuite{})

func (s *UdevSuite) TestConvertsDevice(c *C) {
	device := fakeDevice{
		propBusnum:         "005",
		propDevnum:         "002",
		propVendorID:       "18d1",
		propModelID:        "4ee1",
		propVendorDatabase: "Google Inc.",
		propModelDatabase:  "Nexus Device (MTP)",
	}
	raw, err := rawDevice(device)
	c.Assert(err, IsNil)
	c.Assert(*raw, DeepEquals, mtp.RawDevice{
		BusLocation: 5,
		Devnum:      2,
		VendorID:    0x18d1,
		ProductID:   0x4ee1,
		Vendor:      mtp.String("Google Inc."),
		Product:     mtp.String("Nexus Device (MTP)"),
	})
}

func (s *UdevSuite) TestLeavesUnknownNamesUnset(c *C) {
	raw, err := rawDevice(fakeDevice{propBusnum: "1", propDevnum: "7"})
	c.Assert(err, IsNil)
	c.Assert(raw.Vendor, IsNil)
	c.Assert(raw.Product, IsNil)
	c.Assert(raw.VendorID, Equals, uint16(0))
}

func (s *UdevSuite) TestRejectsInvalidLocation(c *C) {
	_, err := rawDevice(fakeDevice{propDevnum: "7"})
	c.Assert(trace.IsBadParameter(err), Equals, true)
	_, err = rawDevice(fakeDevice{propBusnum: "1", propDevnum: "300"})
	c.Assert(trace.IsBadParameter(err), Equals, true)
}

func (s *UdevSuite) TestSkipsInvalidDevices(c *C) {
	devices := rawDevices([]properties{
		mtpDevice("1", "2"),
		mtpDevice("bogus", "3"),
		mtpDevice("1", "4"),
	}, log.StandardLogger())
	c.Assert(devices, HasLen, 2)
	c.Assert(devices[0].Devnum, Equals, uint8(2))
	c.Assert(devices[1].Devnum, Equals, uint8(4))
}

func (s *UdevSuite) TestSkipsNonMTPDevices(c *C) {
	hub := fakeDevice{propDevtype: devtypeUSBDevice, propBusnum: "1", propDevnum: "1"}
	notTagged := mtpDevice("1", "3")
	notTagged[propMTPDevice] = "0"
	iface := mtpDevice("1", "4")
	iface[propDevtype] = "usb_interface"

	devices := rawDevices([]properties{
		hub,
		mtpDevice("1", "2"),
		notTagged,
		iface,
	}, log.StandardLogger())
	c.Assert(devices, HasLen, 1)
	c.Assert(devices[0].Matches(1, 2), Equals, true)
}

func mtpDevice(busnum, devnum string) fakeDevice {
	return fakeDevice{
		propDevtype:   devtypeUSBDevice,
		propMTPDevice: "1",
		propBusnum:    busnum,
		propDevnum:    devnum,
	}
}

type fakeDevice map[string]string

func (r fakeDevice) PropertyValue(name string) string {
	return r[name]
}
