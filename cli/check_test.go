package cli

import (
	"context"
	"testing"

	"go.viam.com/test"

	"go.viam.com/so3/logging"
	"go.viam.com/so3/spatialmath"
)

func TestCheckPairs(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	summaries, err := checkPairs(context.Background(), 1, 50, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, summaries, test.ShouldHaveLength, len(spatialmath.Kinds)*len(spatialmath.Kinds))
	for _, s := range summaries {
		test.That(t, s.worst(), test.ShouldBeLessThan, 1e-9)
		test.That(t, s.roundTripMean, test.ShouldBeLessThanOrEqualTo, s.roundTripP99)
		test.That(t, s.roundTripP99, test.ShouldBeLessThanOrEqualTo, s.roundTripMax)
		if s.from == s.to {
			test.That(t, s.roundTripMax, test.ShouldBeLessThan, 1e-15)
		}
	}
	test.That(t, logs.FilterMessage("checked representation pair").Len(), test.ShouldEqual, len(summaries))
	first := logs.FilterMessage("checked representation pair").All()[0].ContextMap()
	test.That(t, first, test.ShouldContainKey, "from")
	test.That(t, first, test.ShouldContainKey, "max_round_trip")

	// Summaries come back in table order and do not depend on scheduling.
	again, err := checkPairs(context.Background(), 1, 50, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, again, test.ShouldResemble, summaries)
	for i, s := range summaries {
		test.That(t, s.from, test.ShouldEqual, spatialmath.Kinds[i/len(spatialmath.Kinds)])
		test.That(t, s.to, test.ShouldEqual, spatialmath.Kinds[i%len(spatialmath.Kinds)])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = checkPairs(ctx, 1, 50, logger)
	test.That(t, err, test.ShouldBeError, context.Canceled)
}

func TestCheckAction(t *testing.T) {
	out, err := runApp(t, "check", "--samples", "20")
	test.That(t, err, test.ShouldBeNil)
	for _, route := range []string{"identity", "shortcut", "canonical"} {
		test.That(t, out, test.ShouldContainSubstring, route)
	}

	// A negative tolerance fails every pair.
	_, err = runApp(t, "check", "--samples", "5", "--tolerance", "-1")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "16 representation pairs exceeded")

	_, err = runApp(t, "check", "--samples", "0")
	test.That(t, err, test.ShouldNotBeNil)

	out, err = runApp(t, "check", "--samples", "30", "--histogram", "4")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "round trip error (radians) for")
	test.That(t, out, test.ShouldContainSubstring, "%")
}

func TestWorstPair(t *testing.T) {
	summaries := []pairSummary{
		{from: spatialmath.RotationMatrixKind, roundTripMax: 1e-16},
		{from: spatialmath.QuaternionKind, associateMax: 3e-15},
		{from: spatialmath.AxisAngleKind, roundTripMax: 2e-15},
	}
	test.That(t, worstPair(summaries).from, test.ShouldEqual, spatialmath.QuaternionKind)
}
