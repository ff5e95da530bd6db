package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"go.viam.com/so3/logging"
	"go.viam.com/so3/spatialmath"
)

// pairErrors are the errors, in radians, measured for one (from, to) pair of representations.
type pairErrors struct {
	from, to    spatialmath.Kind
	roundTrip   stats.Float64Data
	associative stats.Float64Data
}

// histogramWidth is the length, in characters, of the longest histogram bar.
const histogramWidth = 40

// pairSummary condenses pairErrors for display. The round trip samples are kept for histograms.
type pairSummary struct {
	from, to      spatialmath.Kind
	roundTrip     stats.Float64Data
	roundTripMean float64
	roundTripP99  float64
	roundTripMax  float64
	associateMax  float64
}

func (s pairSummary) worst() float64 {
	if s.associateMax > s.roundTripMax {
		return s.associateMax
	}
	return s.roundTripMax
}

// CheckAction is the corresponding action for 'check'.
func CheckAction(c *cli.Context) error {
	samples := c.Int(checkFlagSamples)
	if samples < 1 {
		return errors.Errorf("samples must be positive, got %d", samples)
	}
	tolerance := c.Float64(checkFlagTolerance)
	logger := logging.Global().Sublogger("check")

	summaries, err := checkPairs(c.Context, c.Int64(randomFlagSeed), samples, logger)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", renderSummaries(summaries, tolerance))
	if bins := c.Int(checkFlagHistogram); bins > 0 {
		if err := printHistogram(c.App.Writer, worstPair(summaries), bins); err != nil {
			return err
		}
	}

	var failed int
	for _, s := range summaries {
		if s.worst() > tolerance {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d representation pairs exceeded the tolerance of %g radians", failed, tolerance)
	}
	return nil
}

// checkPairs measures, for every ordered pair of representations, how far a conversion round trip
// from -> to -> from moves a random rotation, and how far (A*B)*C is from A*(B*C) when A is stored
// in from and B and C in to. Pairs are checked concurrently; each pair draws from its own source
// seeded from seed, so the results do not depend on scheduling.
func checkPairs(ctx context.Context, seed int64, samples int, logger logging.Logger) ([]pairSummary, error) {
	kinds := spatialmath.Kinds
	summaries := make([]pairSummary, len(kinds)*len(kinds))
	errs, ctx := errgroup.WithContext(ctx)
	for i, from := range kinds {
		for j, to := range kinds {
			idx := i*len(kinds) + j
			errs.Go(func() error {
				//nolint:gosec
				rng := rand.New(rand.NewSource(seed + int64(idx)))
				measured, err := measurePair(ctx, rng, from, to, samples)
				if err != nil {
					return err
				}
				summary, err := summarize(measured)
				if err != nil {
					return errors.Wrapf(err, "summarizing %v -> %v", from, to)
				}
				logger.WithFields("from", from, "to", to).Debugw("checked representation pair",
					"max_round_trip", summary.roundTripMax, "max_associative", summary.associateMax)
				summaries[idx] = summary
				return nil
			})
		}
	}
	if err := errs.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func measurePair(ctx context.Context, rng *rand.Rand, from, to spatialmath.Kind, samples int) (pairErrors, error) {
	measured := pairErrors{
		from:        from,
		to:          to,
		roundTrip:   make(stats.Float64Data, 0, samples),
		associative: make(stats.Float64Data, 0, samples),
	}
	for i := 0; i < samples; i++ {
		if err := ctx.Err(); err != nil {
			return measured, err
		}
		o := spatialmath.RandomOrientation[float64](rng, from)
		back := spatialmath.ConvertOrientation(spatialmath.ConvertOrientation(o, to), from)
		measured.roundTrip = append(measured.roundTrip, spatialmath.AngleBetween(o, back))

		b := spatialmath.RandomOrientation[float64](rng, to)
		c := spatialmath.RandomOrientation[float64](rng, to)
		left := spatialmath.ComposeOrientations(spatialmath.ComposeOrientations(o, b), c)
		right := spatialmath.ComposeOrientations(o, spatialmath.ComposeOrientations(b, c))
		measured.associative = append(measured.associative, spatialmath.AngleBetween(left, right))
	}
	return measured, nil
}

func summarize(errs pairErrors) (pairSummary, error) {
	summary := pairSummary{from: errs.from, to: errs.to, roundTrip: errs.roundTrip}
	var err error
	if summary.roundTripMean, err = errs.roundTrip.Mean(); err != nil {
		return summary, err
	}
	if summary.roundTripP99, err = errs.roundTrip.Percentile(99); err != nil {
		return summary, err
	}
	if summary.roundTripMax, err = errs.roundTrip.Max(); err != nil {
		return summary, err
	}
	if summary.associateMax, err = errs.associative.Max(); err != nil {
		return summary, err
	}
	return summary, nil
}

// renderSummaries prints a table with one row per pair, alongside the conversion route the pair takes.
func renderSummaries(summaries []pairSummary, tolerance float64) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"From", "To", "Route", "Hops", "Round trip mean", "Round trip p99", "Round trip max", "Associativity max", "OK"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.from.String(),
			s.to.String(),
			spatialmath.Route(s.from, s.to).String(),
			spatialmath.Hops(s.from, s.to),
			fmt.Sprintf("%.3g", s.roundTripMean),
			fmt.Sprintf("%.3g", s.roundTripP99),
			fmt.Sprintf("%.3g", s.roundTripMax),
			fmt.Sprintf("%.3g", s.associateMax),
			s.worst() <= tolerance,
		})
	}
	return t.Render()
}

func worstPair(summaries []pairSummary) pairSummary {
	return lo.MaxBy(summaries, func(a, b pairSummary) bool {
		return a.worst() > b.worst()
	})
}

// printHistogram draws the distribution of round trip errors of one pair.
func printHistogram(w io.Writer, s pairSummary, bins int) error {
	printf(w, "round trip error (radians) for %v -> %v", s.from, s.to)
	hist := histogram.Hist(bins, s.roundTrip)
	return histogram.Fprintf(w, hist, histogram.Linear(histogramWidth), func(v float64) string {
		return fmt.Sprintf("%.2e", v)
	})
}
