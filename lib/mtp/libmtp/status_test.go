package libmtp

import (
	"testing"

	"github.com/gravitational/mtpfs-probe/lib/mtp"

	"github.com/gravitational/trace"
	. "gopkg.in/check.v1"
)

func TestLibMTP(t *testing.T) { TestingT(t) }

type StatusSuite struct{}

var _ = Suite(&StatusSuite{})

func (s *StatusSuite) TestConvertsStatus(c *C) {
	c.Assert(statusToError(statusNone), IsNil)
	c.Assert(trace.IsNotFound(statusToError(statusNoDeviceAttached)), Equals, true)

	err := statusToError(statusUSBLayer)
	c.Assert(mtp.IsLibraryError(err), Equals, true)
	libErr := trace.Unwrap(err).(*mtp.LibraryError)
	c.Assert(libErr.Code, Equals, statusUSBLayer)
	c.Assert(libErr.Message, Equals, "USB layer error")

	err = statusToError(42)
	c.Assert(mtp.IsLibraryError(err), Equals, true)
	c.Assert(trace.Unwrap(err).(*mtp.LibraryError).Message, Equals, "unknown error")
}
