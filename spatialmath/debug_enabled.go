//go:build so3debug

package spatialmath

const debugAssertions = true
