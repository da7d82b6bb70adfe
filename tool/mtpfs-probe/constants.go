package main

import (
	"github.com/gravitational/mtpfs-probe/lib/defaults"
)

const (
	// ProgramName is the name of the program as shown in the usage line
	ProgramName = "mtpfs-probe"

	// EnvBackend names the environment variable to select the enumeration backend
	EnvBackend = "MTPFS_PROBE_BACKEND"

	// EnvDebug names the environment variable to turn on debug mode
	EnvDebug = "MTPFS_PROBE_DEBUG"

	// DefaultBackend is the enumeration backend used unless specified otherwise
	DefaultBackend = defaults.Backend
)
