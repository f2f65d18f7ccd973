// SPDX-License-Identifier: MIT

// Package native is the cgo bridge to the webrtc-audio-processing-2
// library. It compiles a thin C++ shim (wrapper.cpp) exposing a flat
// procedural API over the object-oriented webrtc::AudioProcessing
// interface. wrapper.h is the complete binding surface: nothing outside
// it is reachable from Go, and the engine handle stays opaque.
//
// The package links the system library through pkg-config. When the
// library lives outside the default search paths, or was built from the
// vendored source tree, point cgo at it with the exports printed by
// cmd/apmbuild (see the nativebuild package).
//
// Sample buffers handed to the engine are copied through C-allocated
// planar scratch memory owned by the Engine, so no Go pointers ever cross
// the boundary and processing stays allocation-free after construction.
package native
