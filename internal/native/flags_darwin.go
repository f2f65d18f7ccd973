// SPDX-License-Identifier: MIT

//go:build darwin

package native

/*
#cgo LDFLAGS: -framework CoreFoundation
*/
import "C"
