// SPDX-License-Identifier: MIT

// Command apmbuild resolves the native webrtc-audio-processing library
// and prints the cgo environment needed to compile against it.
//
// By default it probes a system-installed library through pkg-config:
//
//	eval "$(apmbuild)"
//	go build ./...
//
// With -vendored it builds the library from a source checkout first
// (abseil-cpp via cmake, then the engine via meson and ninja) and points
// cgo at the install prefix.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/jacksongoode/webrtc-audio-processing/nativebuild"
)

func main() {
	vendored := flag.Bool("vendored", false, "build the library from a vendored source checkout")
	sourceDir := flag.String("source", "third_party/webrtc-audio-processing", "vendored source checkout (with -vendored)")
	abseilDir := flag.String("abseil", "third_party/abseil-cpp", "abseil-cpp checkout (with -vendored)")
	buildDir := flag.String("builddir", "build", "out-of-tree build directory (with -vendored)")
	prefix := flag.String("prefix", "build/install", "install prefix for the built library (with -vendored)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var resolver nativebuild.Resolver
	if *vendored {
		log.WithFields(log.Fields{
			"source": *sourceDir,
			"prefix": *prefix,
		}).Info("building vendored library")
		resolver = nativebuild.NewVendoredResolver(*sourceDir, *abseilDir, *buildDir, *prefix)
	} else {
		log.Debug("probing pkg-config for an installed library")
		resolver = nativebuild.NewPkgConfigResolver()
	}

	paths, err := resolver.Resolve(ctx)
	if err != nil {
		log.WithError(err).Fatal("could not resolve the native library")
	}

	fmt.Println(exportLine("CGO_CFLAGS", flagList("-I", paths.IncludeDirs)))
	fmt.Println(exportLine("CGO_CXXFLAGS", flagList("-I", paths.IncludeDirs)))
	fmt.Println(exportLine("CGO_LDFLAGS", flagList("-L", paths.LibDirs)+" -l"+nativebuild.LibName))
}

func exportLine(name, value string) string {
	return fmt.Sprintf("export %s=%q", name, value)
}

func flagList(prefix string, dirs []string) string {
	flags := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		flags = append(flags, prefix+dir)
	}
	return strings.Join(flags, " ")
}
