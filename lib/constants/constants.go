/*
Copyright 2018 Gravitational, Inc.

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

package constants

const (
	// ExitCodeFailure is the exit code for usage errors, invalid device paths,
	// enumeration failures and devices not found
	ExitCodeFailure = 1

	// MsgNoValidDevices is printed when the device path cannot be parsed
	MsgNoValidDevices = "No valid devices found"

	// UnknownVendor replaces the vendor name of devices without one
	UnknownVendor = "Unknown vendor"

	// UnknownProduct replaces the product name of devices without one
	UnknownProduct = "Unknown product"
)
