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

// mtpfs-probe reports the vendor and product of the MTP device attached
// at the given ugen device path, e.g.
//
//	mtpfs-probe /dev/ugen0.2
//
// The exit status is 0 if the device was found and 1 otherwise.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gravitational/mtpfs-probe/lib/constants"
	"github.com/gravitational/mtpfs-probe/lib/mtp"
	"github.com/gravitational/mtpfs-probe/lib/probe"
	"github.com/gravitational/mtpfs-probe/lib/utils"

	"github.com/gravitational/trace"
	"github.com/gravitational/version"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	cli := &probeCLI{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		newLibrary: newLibrary,
	}
	var exitCode int
	if err := cli.run(context.Background(), os.Args[1:]); err != nil {
		log.Debugf("Failed to run: '%v'.", trace.DebugReport(err))
		exitCode = utils.ExitStatusFromError(err)
	}
	os.Exit(exitCode)
}

// probeCLI implements the command line interface
type probeCLI struct {
	stdout io.Writer
	stderr io.Writer
	// newLibrary creates the enumeration backend with the given name
	newLibrary func(backend string, config mtp.Config) (mtp.Library, error)
}

func (r *probeCLI) run(ctx context.Context, args []string) error {
	var (
		app         = kingpin.New("mtpfs-probe", "Report the MTP device attached at the given ugen device path")
		debug       = app.Flag("debug", "Enable debug mode and library diagnostics").OverrideDefaultFromEnvar(EnvDebug).Bool()
		backend     = app.Flag("backend", "Device enumeration backend").Default(DefaultBackend).OverrideDefaultFromEnvar(EnvBackend).Enum(backends()...)
		showVersion = app.Flag("version", "Print version information").Bool()
		paths       = app.Arg("path-to-device", "Device path, e.g. /dev/ugen0.2").Strings()
	)
	app.UsageWriter(r.stderr)
	app.ErrorWriter(r.stderr)
	// Help is not a successful lookup: record the request instead of
	// letting kingpin exit with status 0
	var helpRequested bool
	app.Terminate(func(int) { helpRequested = true })

	if _, err := app.Parse(args); err != nil {
		return r.usage(err)
	}
	if helpRequested {
		return r.usage(trace.BadParameter("help requested"))
	}

	log.SetOutput(r.stderr)
	if *debug {
		log.SetLevel(log.DebugLevel)
	} else {
		// Enumeration failures are reported with the exit code only
		log.SetLevel(log.WarnLevel)
	}

	if *showVersion {
		version.Print()
		return nil
	}

	if len(*paths) != 1 {
		return r.usage(trace.BadParameter("expected a single device path, got %v", len(*paths)))
	}
	if _, err := probe.ParseDevicePath((*paths)[0]); err != nil {
		log.WithError(err).Debug("Invalid device path.")
		fmt.Fprintln(r.stderr, constants.MsgNoValidDevices)
		return utils.NewExitError(constants.ExitCodeFailure)
	}

	lib, err := r.newLibrary(*backend, mtp.Config{
		Quiet:       !*debug,
		FieldLogger: log.StandardLogger(),
	})
	if err != nil {
		return trace.Wrap(err)
	}
	defer func() {
		if err := utils.CloserFor(lib).Close(); err != nil {
			log.WithError(err).Debug("Failed to close enumeration library.")
		}
	}()

	_, err = probe.Run(ctx, probe.Config{
		DevicePath:  (*paths)[0],
		Library:     lib,
		Out:         r.stdout,
		FieldLogger: log.WithField(trace.Component, "probe"),
	})
	return trace.Wrap(err)
}

func (r *probeCLI) usage(err error) error {
	log.WithError(err).Debug("Invalid command line.")
	fmt.Fprintf(r.stderr, "usage: %v [<flags>] path-to-device\n", ProgramName)
	return utils.NewExitError(constants.ExitCodeFailure)
}
