//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/gravitational/trace"
	"golang.org/x/sys/unix"
	. "gopkg.in/check.v1"
)

type StderrSuite struct{}

var _ = Suite(&StderrSuite{})

func (s *StderrSuite) TestRedirectsAndRestoresDescriptor(c *C) {
	dir := c.MkDir()
	source, err := os.Create(filepath.Join(dir, "source"))
	c.Assert(err, IsNil)
	defer source.Close()
	targetPath := filepath.Join(dir, "target")
	c.Assert(ioutil.WriteFile(targetPath, nil, 0600), IsNil)

	fd := int(source.Fd())
	err = redirectFd(fd, targetPath, func() error {
		_, err := unix.Write(fd, []byte("hidden"))
		return err
	})
	c.Assert(err, IsNil)
	_, err = unix.Write(fd, []byte("visible"))
	c.Assert(err, IsNil)

	data, err := ioutil.ReadFile(filepath.Join(dir, "source"))
	c.Assert(err, IsNil)
	c.Assert(string(data), Equals, "visible")
	data, err = ioutil.ReadFile(targetPath)
	c.Assert(err, IsNil)
	c.Assert(string(data), Equals, "hidden")
}

func (s *StderrSuite) TestPropagatesError(c *C) {
	err := SilenceStderr(func() error {
		return trace.NotFound("no devices")
	})
	c.Assert(trace.IsNotFound(err), Equals, true)
}

func (s *StderrSuite) TestFailsOnMissingTarget(c *C) {
	var called bool
	err := redirectFd(unix.Stderr, filepath.Join(c.MkDir(), "missing"), func() error {
		called = true
		return nil
	})
	c.Assert(err, NotNil)
	c.Assert(called, Equals, false)
}
