// SPDX-License-Identifier: MIT

package nativebuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// VendoredResolver builds the engine from a vendored source checkout: the
// abseil-cpp prerequisite via cmake, then the engine itself via meson and
// ninja as a static library installed under InstallPrefix.
type VendoredResolver struct {
	// SourceDir is the webrtc-audio-processing checkout.
	SourceDir string
	// AbseilDir is the abseil-cpp checkout the engine depends on.
	AbseilDir string
	// BuildDir holds the out-of-tree build directories.
	BuildDir string
	// InstallPrefix receives the built headers and static libraries.
	InstallPrefix string

	run runner
}

// NewVendoredResolver returns a resolver that execs the real build tools.
func NewVendoredResolver(sourceDir, abseilDir, buildDir, installPrefix string) *VendoredResolver {
	return &VendoredResolver{
		SourceDir:     sourceDir,
		AbseilDir:     abseilDir,
		BuildDir:      buildDir,
		InstallPrefix: installPrefix,
		run:           execRunner{},
	}
}

// Resolve builds the vendored tree and returns the resulting paths.
// The checkout is validated first (ErrEmptySourceTree), then the tools
// (ErrBuildToolMissing), then each build step (ErrBuildFailed).
func (r *VendoredResolver) Resolve(ctx context.Context) (Paths, error) {
	if err := r.checkSourceTree(); err != nil {
		return Paths{}, err
	}
	for _, tool := range []string{"cmake", "meson", "ninja"} {
		if _, err := r.run.LookPath(tool); err != nil {
			return Paths{}, fmt.Errorf("%w: %s is required to build the vendored source tree", ErrBuildToolMissing, tool)
		}
	}

	if err := r.buildAbseil(ctx); err != nil {
		return Paths{}, err
	}
	if err := r.buildEngine(ctx); err != nil {
		return Paths{}, err
	}

	return Paths{
		IncludeDirs: []string{
			filepath.Join(r.InstallPrefix, "include", LibName),
			filepath.Join(r.InstallPrefix, "include"),
			r.SourceDir,
			filepath.Join(r.SourceDir, "webrtc"),
		},
		LibDirs: []string{filepath.Join(r.InstallPrefix, "lib")},
	}, nil
}

func (r *VendoredResolver) checkSourceTree() error {
	entries, err := os.ReadDir(r.SourceDir)
	if err != nil || len(entries) == 0 {
		return fmt.Errorf("%w: %s has no files; clone the repository recursively "+
			"(git submodule update --init --recursive) to fetch the nested sources",
			ErrEmptySourceTree, r.SourceDir)
	}
	return nil
}

// buildAbseil configures and installs abseil-cpp with the C++17 standard
// the engine headers require.
func (r *VendoredResolver) buildAbseil(ctx context.Context) error {
	buildDir := filepath.Join(r.BuildDir, "abseil-cpp")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrBuildFailed, buildDir, err)
	}

	err := r.run.Run(ctx, "cmake",
		"-S", r.AbseilDir,
		"-B", buildDir,
		"-DCMAKE_CXX_STANDARD=17",
		"-DCMAKE_POSITION_INDEPENDENT_CODE=ON",
		"-DCMAKE_INSTALL_PREFIX="+r.InstallPrefix,
	)
	if err != nil {
		return fmt.Errorf("%w: cmake configure of abseil-cpp: %w", ErrBuildFailed, err)
	}

	if err := r.run.Run(ctx, "cmake", "--build", buildDir, "--target", "install"); err != nil {
		return fmt.Errorf("%w: cmake build of abseil-cpp: %w", ErrBuildFailed, err)
	}
	return nil
}

// buildEngine configures the engine with meson as a static library and
// installs it with ninja.
func (r *VendoredResolver) buildEngine(ctx context.Context) error {
	buildDir := filepath.Join(r.BuildDir, LibName)
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrBuildFailed, buildDir, err)
	}

	err := r.run.Run(ctx, "meson",
		"setup",
		"--prefix", r.InstallPrefix,
		"-Ddefault_library=static",
		buildDir,
		r.SourceDir,
	)
	if err != nil {
		return fmt.Errorf("%w: meson setup of %s: %w", ErrBuildFailed, LibName, err)
	}

	if err := r.run.Run(ctx, "ninja", "-C", buildDir, "install"); err != nil {
		return fmt.Errorf("%w: ninja install of %s: %w", ErrBuildFailed, LibName, err)
	}
	return nil
}
