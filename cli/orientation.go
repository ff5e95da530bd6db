package cli

import (
	"encoding/json"
	"math/rand"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"go.viam.com/so3/logging"
	"go.viam.com/so3/spatialmath"
	"go.viam.com/so3/utils"
)

// ConvertAction is the corresponding action for 'convert'.
func ConvertAction(c *cli.Context) error {
	o, err := parseOrientation(c.String(orientationFlag))
	if err != nil {
		return err
	}
	kind, err := spatialmath.ParseKind(c.String(toFlag))
	if err != nil {
		return err
	}
	logger := logging.Global().Sublogger("convert")
	logger.Debugw("converting orientation",
		"from", o.Kind(), "to", kind,
		"route", spatialmath.Route(o.Kind(), kind), "hops", spatialmath.Hops(o.Kind(), kind))
	return printOrientation(c, spatialmath.ConvertOrientation(o, kind))
}

// ComposeAction is the corresponding action for 'compose'.
func ComposeAction(c *cli.Context) error {
	raw := c.Args().Slice()
	if len(raw) < 2 {
		return errors.Errorf("compose needs at least 2 orientations, got %d", len(raw))
	}
	orientations, err := parseOrientations(raw)
	if err != nil {
		return err
	}
	compose := func(acc, o spatialmath.Orientation[float64], _ int) spatialmath.Orientation[float64] {
		return spatialmath.ComposeOrientations(acc, o)
	}
	result := lo.Reduce(orientations[1:], compose, orientations[0])
	return printOrientation(c, result)
}

// InvertAction is the corresponding action for 'invert'.
func InvertAction(c *cli.Context) error {
	o, err := parseOrientation(c.String(orientationFlag))
	if err != nil {
		return err
	}
	return printOrientation(c, spatialmath.InvertOrientation(o))
}

// ExpAction is the corresponding action for 'exp'.
func ExpAction(c *cli.Context) error {
	w, err := spatialmath.ParseVector3[float64](c.String(vectorFlag))
	if err != nil {
		return err
	}
	if c.Bool(generalFlagDegrees) {
		w = w.Scale(utils.DegToRad(1.0))
	}
	kind, err := spatialmath.ParseKind(c.String(toFlag))
	if err != nil {
		return err
	}
	return printOrientation(c, spatialmath.ExpOrientation(w, kind))
}

// LogAction is the corresponding action for 'log'.
func LogAction(c *cli.Context) error {
	o, err := parseOrientation(c.String(orientationFlag))
	if err != nil {
		return err
	}
	w := spatialmath.Log(o.RotationMatrix())
	if c.Bool(generalFlagDegrees) {
		w = w.Scale(utils.RadToDeg(1.0))
	}
	return printJSON(c, w)
}

// RandomAction is the corresponding action for 'random'.
func RandomAction(c *cli.Context) error {
	kind, err := spatialmath.ParseKind(c.String(toFlag))
	if err != nil {
		return err
	}
	count := c.Int(randomFlagCount)
	if count < 1 {
		return errors.Errorf("count must be positive, got %d", count)
	}
	//nolint:gosec
	rng := rand.New(rand.NewSource(c.Int64(randomFlagSeed)))

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Type", "Value", "Angle (deg)"})
	for i := 0; i < count; i++ {
		o := spatialmath.RandomOrientation[float64](rng, kind)
		value, err := json.Marshal(orientationValue(o))
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			kind.String(),
			string(value),
			strconv.FormatFloat(utils.RadToDeg(o.AxisAngle().Angle), 'f', 2, 64),
		})
	}
	printf(c.App.Writer, "%s", t.Render())
	return nil
}

func parseOrientations(raw []string) ([]spatialmath.Orientation[float64], error) {
	orientations := make([]spatialmath.Orientation[float64], 0, len(raw))
	for i, s := range raw {
		o, err := parseOrientation(s)
		if err != nil {
			return nil, errors.Wrapf(err, "orientation %d", i+1)
		}
		orientations = append(orientations, o)
	}
	return orientations, nil
}

// parseOrientation reads an orientation config written as JSON. It goes through the attribute map
// decoder so numbers may be written as integers.
func parseOrientation(s string) (spatialmath.Orientation[float64], error) {
	var attrs map[string]interface{}
	if err := json.Unmarshal([]byte(s), &attrs); err != nil {
		return nil, errors.Wrapf(err, "cannot parse orientation %q", s)
	}
	return spatialmath.OrientationConfigFromAttributes(attrs)
}

func orientationValue(o spatialmath.Orientation[float64]) interface{} {
	m, err := spatialmath.OrientationMap(o)
	if err != nil {
		return nil
	}
	return m["value"]
}

func printOrientation(c *cli.Context, o spatialmath.Orientation[float64]) error {
	m, err := spatialmath.OrientationMap(o)
	if err != nil {
		return err
	}
	logging.Global().Debugw("printing orientation", "type", o.Kind())
	return printJSON(c, m)
}

func printJSON(c *cli.Context, v interface{}) error {
	bytes, err := json.Marshal(v)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", bytes)
	return nil
}
