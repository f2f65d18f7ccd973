// SPDX-License-Identifier: MIT

package nativebuild

import (
	"context"
	"os"
	"os/exec"
)

// Paths are the directories needed to compile and link against the native
// engine, in search order.
type Paths struct {
	IncludeDirs []string
	LibDirs     []string
}

// Resolver produces the build paths for one resolution strategy.
type Resolver interface {
	Resolve(ctx context.Context) (Paths, error)
}

// runner executes external build tools. It is an interface so resolver
// tests never have to exec pkg-config, cmake, meson or ninja.
type runner interface {
	// Output runs the command and returns its captured stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs the command with stdout/stderr passed through, as build
	// tools produce progress output users want to see.
	Run(ctx context.Context, name string, args ...string) error
	// LookPath reports where the named tool lives, if anywhere.
	LookPath(name string) (string, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
