// SPDX-License-Identifier: MIT

// Package nativebuild locates or builds the webrtc-audio-processing-2
// native library and reports the include and library directories needed to
// compile and link against it.
//
// Two resolution strategies implement the Resolver interface:
//
//   - PkgConfigResolver probes an installed copy of the library through
//     pkg-config. The WEBRTC_AUDIO_PROCESSING_INCLUDE and
//     WEBRTC_AUDIO_PROCESSING_LIB environment variables override the probe
//     when set.
//   - VendoredResolver compiles the vendored source checkout: first the
//     abseil-cpp prerequisite with cmake (C++17), then the engine itself
//     as a static library with meson and ninja, installed into a
//     caller-chosen prefix.
//
// The strategy is chosen when the build is configured (cmd/apmbuild's
// -vendored flag), not at runtime. All failures are fatal to the build and
// carry remediation text in the error message.
package nativebuild
