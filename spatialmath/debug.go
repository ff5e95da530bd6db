//go:build !so3debug

package spatialmath

// debugAssertions enables precondition checks in constructors, setters and Log. Build with the
// so3debug tag to turn them on.
const debugAssertions = false
