// SPDX-License-Identifier: MIT

package nativebuild

import "errors"

var (
	// ErrDependencyNotFound means neither the environment overrides nor
	// the pkg-config probe produced both an include and a library path.
	ErrDependencyNotFound = errors.New("webrtc-audio-processing-2 not found")

	// ErrEmptySourceTree means the vendored source checkout has no files,
	// usually because the repository was cloned without submodules.
	ErrEmptySourceTree = errors.New("vendored source tree is empty")

	// ErrBuildToolMissing means cmake, meson or ninja is not installed.
	ErrBuildToolMissing = errors.New("build tool missing")

	// ErrBuildFailed means a build step exited with a non-zero status.
	ErrBuildFailed = errors.New("native build failed")
)
