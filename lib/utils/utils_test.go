package utils

import (
	"errors"
	"os"
	"testing"

	"github.com/gravitational/trace"
	. "gopkg.in/check.v1"
)

func TestUtils(t *testing.T) { TestingT(t) }

type UtilsSuite struct {
}

var _ = Suite(&UtilsSuite{})

func (s *UtilsSuite) TestExitStatus(c *C) {
	tcs := []struct {
		err      error
		expected int
		comment  string
	}{
		{err: nil, expected: 0, comment: "no error"},
		{err: NewExitError(3), expected: 3, comment: "exit error"},
		{err: trace.Wrap(NewExitError(2)), expected: 2, comment: "wrapped exit error"},
		{err: errors.New("failure"), expected: 1, comment: "plain error"},
		{err: trace.NotFound("no device"), expected: 1, comment: "trace error"},
	}
	for _, tc := range tcs {
		c.Assert(ExitStatusFromError(tc.err), Equals, tc.expected, Commentf("%v", tc.comment))
	}
	c.Assert((&ExitError{Code: 1}).Error(), Equals, "exit status 1")
}

func (s *UtilsSuite) TestCloserFor(c *C) {
	c.Assert(CloserFor("not a closer").Close(), IsNil)

	f, err := os.Create(c.MkDir() + "/file")
	c.Assert(err, IsNil)
	c.Assert(CloserFor(f), Equals, f)
	c.Assert(CloserFor(f).Close(), IsNil)
}
