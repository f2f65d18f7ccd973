// SPDX-License-Identifier: MIT

//go:build !windows

package native

// Selects the POSIX branch of the engine's OS abstraction layer.

/*
#cgo CPPFLAGS: -DWEBRTC_POSIX
*/
import "C"
