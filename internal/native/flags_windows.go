// SPDX-License-Identifier: MIT

//go:build windows

package native

// Selects the Windows branch of the engine's OS abstraction layer.
// NOMINMAX keeps <windows.h> from shadowing std::min/std::max inside the
// shim.

/*
#cgo CPPFLAGS: -DWEBRTC_WIN -DNOMINMAX
*/
import "C"
