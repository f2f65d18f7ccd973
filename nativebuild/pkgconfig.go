// SPDX-License-Identifier: MIT

package nativebuild

import (
	"context"
	"fmt"
	"os"
	"strings"
)

const (
	// LibName is the pkg-config module name of the native engine.
	LibName = "webrtc-audio-processing-2"
	// LibMinVersion is the oldest engine release the shim compiles
	// against.
	LibMinVersion = "2.0"

	// EnvInclude and EnvLib override the probed paths when set.
	EnvInclude = "WEBRTC_AUDIO_PROCESSING_INCLUDE"
	EnvLib     = "WEBRTC_AUDIO_PROCESSING_LIB"
)

// PkgConfigResolver locates a system-installed engine through pkg-config,
// honoring the EnvInclude and EnvLib overrides.
type PkgConfigResolver struct {
	run runner
}

// NewPkgConfigResolver returns a resolver that execs the real pkg-config.
func NewPkgConfigResolver() *PkgConfigResolver {
	return &PkgConfigResolver{run: execRunner{}}
}

// Resolve returns the include and library directories for the installed
// engine. Environment overrides take precedence over the probe; if
// neither yields both paths the error wraps ErrDependencyNotFound and
// explains how to fix the build.
func (r *PkgConfigResolver) Resolve(ctx context.Context) (Paths, error) {
	includeDir := os.Getenv(EnvInclude)
	libDir := os.Getenv(EnvLib)

	if includeDir == "" || libDir == "" {
		probedInclude, probedLib := r.probe(ctx)
		if includeDir == "" {
			includeDir = probedInclude
		}
		if libDir == "" {
			libDir = probedLib
		}
	}

	if includeDir == "" || libDir == "" {
		return Paths{}, fmt.Errorf(
			"%w: could not find headers and libraries for %s >= %s; "+
				"install the library where pkg-config can see it, set %s and %s, "+
				"or build the vendored source tree (apmbuild -vendored)",
			ErrDependencyNotFound, LibName, LibMinVersion, EnvInclude, EnvLib)
	}

	return Paths{
		IncludeDirs: []string{includeDir},
		LibDirs:     []string{libDir},
	}, nil
}

// probe asks pkg-config for the first -I and -L directory of the module.
// Any failure (missing tool, module unknown, version too old) reports as
// empty paths; Resolve decides whether that is fatal.
func (r *PkgConfigResolver) probe(ctx context.Context) (includeDir, libDir string) {
	atLeast := fmt.Sprintf("--atleast-version=%s", LibMinVersion)
	if err := r.run.Run(ctx, "pkg-config", atLeast, LibName); err != nil {
		return "", ""
	}

	cflags, err := r.run.Output(ctx, "pkg-config", "--cflags-only-I", LibName)
	if err != nil {
		return "", ""
	}
	libs, err := r.run.Output(ctx, "pkg-config", "--libs-only-L", LibName)
	if err != nil {
		return "", ""
	}

	return firstFlagDir(string(cflags), "-I"), firstFlagDir(string(libs), "-L")
}

// firstFlagDir extracts the directory of the first flag with the given
// prefix from pkg-config output, e.g. the first -I path of a
// --cflags-only-I line.
func firstFlagDir(output, prefix string) string {
	for _, field := range strings.Fields(output) {
		if dir, ok := strings.CutPrefix(field, prefix); ok && dir != "" {
			return dir
		}
	}
	return ""
}
