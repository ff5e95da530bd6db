package spatialmath

import (
	"go.viam.com/so3/logging"
)

// debugAssert reports a violated precondition. Preconditions are the caller's responsibility, so a
// violation is a programming error: it is logged on the global logger and panics.
// Callers guard the call with debugAssertions so release builds never evaluate the check.
func debugAssert(err error) {
	if err == nil {
		return
	}
	logging.Global().Errorw("SO(3) precondition violated", "error", err)
	panic(err)
}

// assertRepData checks the invariants of representation data when debug assertions are enabled.
func assertRepData[S Float](kind Kind, data any) {
	if debugAssertions {
		debugAssert(validateData[S](kind, data, debugTolerance[S]()))
	}
}
