package libmtp

import (
	"github.com/gravitational/mtpfs-probe/lib/mtp"

	. "gopkg.in/check.v1"
)

type RawSuite struct{}

var _ = Suite(&RawSuite{})

func (s *RawSuite) TestConvertsRawDevices(c *C) {
	devices := []mtp.RawDevice{
		{
			BusLocation: 5,
			Devnum:      2,
			VendorID:    0x18d1,
			ProductID:   0x4ee1,
			Vendor:      mtp.String("Google Inc"),
			Product:     mtp.String("Nexus/Pixel (MTP)"),
		},
		{BusLocation: 1, Devnum: 127, VendorID: 0x0bb4, ProductID: 0x0c02},
		{BusLocation: 300, Devnum: 3, Vendor: mtp.String("Acme")},
		{BusLocation: 2, Devnum: 4, Product: mtp.String("")},
	}
	rawdevs, count := newRawDeviceArray(devices)
	defer freeRawDeviceArray(rawdevs, count)

	converted := rawDevices(rawdevs, count)
	c.Assert(converted, DeepEquals, devices)
	c.Assert(converted[1].Vendor, IsNil)
	c.Assert(converted[1].Product, IsNil)
	c.Assert(converted[2].Product, IsNil)
	c.Assert(converted[3].Vendor, IsNil)
	c.Assert(*converted[3].Product, Equals, "")
}

func (s *RawSuite) TestConvertsPartOfArray(c *C) {
	rawdevs, count := newRawDeviceArray([]mtp.RawDevice{
		{BusLocation: 1, Devnum: 1},
		{BusLocation: 1, Devnum: 2},
	})
	defer freeRawDeviceArray(rawdevs, count)

	converted := rawDevices(rawdevs, 1)
	c.Assert(converted, DeepEquals, []mtp.RawDevice{{BusLocation: 1, Devnum: 1}})
}

func (s *RawSuite) TestConvertsEmptyArray(c *C) {
	rawdevs, count := newRawDeviceArray(nil)
	c.Assert(count, Equals, 0)
	c.Assert(rawDevices(rawdevs, count), HasLen, 0)
	c.Assert(rawDevices(nil, 3), HasLen, 0)
	freeRawDeviceArray(rawdevs, count)
}
