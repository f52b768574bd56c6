// Package util holds shared helpers: logging wrappers, user directory
// resolution, and small value conversions.
package util

import "log"

// LogError reports err under a short context label. Nil errors are
// ignored so call sites can stay unconditional.
func LogError(context string, err error) {
	if err == nil {
		return
	}
	log.Printf("%s: %v", context, err)
}

// MustSucceed aborts the process when err is non-nil. Only for startup
// wiring that cannot continue without the resource.
func MustSucceed(context string, err error) {
	if err == nil {
		return
	}
	log.Fatalf("%s: %v", context, err)
}
