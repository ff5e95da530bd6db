// Package cli contains all business logic needed by the so3 CLI command.
package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/so3/logging"
)

// CLI flags.
const (
	generalFlagDebug   = "debug"
	generalFlagLogFile = "log-file"
	generalFlagDegrees = "degrees"

	orientationFlag = "orientation"
	toFlag          = "to"
	vectorFlag      = "vector"

	randomFlagSeed  = "seed"
	randomFlagCount = "count"

	checkFlagSamples   = "samples"
	checkFlagTolerance = "tolerance"
	checkFlagHistogram = "histogram"
)

var orientationUsage = `orientation as JSON, e.g. '{"type": "axis_angle", "value": {"axis": [0, 0, 1], "angle": 1.57}}'`

var toFlagDef = &cli.StringFlag{
	Name:  toFlag,
	Value: "rotation_matrix",
	Usage: "representation of the result: rotation_matrix, axis_angle, quaternion or rotation_vector",
}

var seedFlagDef = &cli.Int64Flag{
	Name:  randomFlagSeed,
	Value: 1,
	Usage: "seed for the random source",
}

// logFile is the appender behind --log-file for the running command.
var logFile *logging.FileAppender

// restoreGlobal puts back the global logger that Before replaced.
var restoreGlobal func()

var app = &cli.App{
	Name:            "so3",
	Usage:           "convert, compose and check 3D rotations",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    generalFlagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.PathFlag{
			Name:  generalFlagLogFile,
			Usage: "also write log lines to this file, rotating it as it grows",
		},
	},
	Before: func(c *cli.Context) error {
		level := logging.INFO
		if c.Bool(generalFlagDebug) {
			level = logging.DEBUG
		}
		// Log lines go to ErrWriter so they never mix with the JSON printed on Writer.
		logger := logging.NewWriterLogger("so3", c.App.ErrWriter, level)
		if path := c.Path(generalFlagLogFile); path != "" {
			logFile = logging.NewFileAppender(path)
			logger.AddAppender(logFile)
		}
		restoreGlobal = logging.ReplaceGlobal(logger)
		return nil
	},
	After: func(c *cli.Context) error {
		if restoreGlobal != nil {
			restoreGlobal()
			restoreGlobal = nil
		}
		if logFile == nil {
			return nil
		}
		err := logFile.Close()
		logFile = nil
		return err
	},
	Commands: []*cli.Command{
		{
			Name:   "convert",
			Usage:  "convert an orientation to another representation",
			Action: ConvertAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     orientationFlag,
					Required: true,
					Usage:    orientationUsage,
				},
				toFlagDef,
			},
		},
		{
			Name:      "compose",
			Usage:     "compose orientations left to right; the result uses the representation of the first",
			ArgsUsage: "<orientation> <orientation> [orientation...]",
			Action:    ComposeAction,
		},
		{
			Name:   "invert",
			Usage:  "invert an orientation",
			Action: InvertAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     orientationFlag,
					Required: true,
					Usage:    orientationUsage,
				},
			},
		},
		{
			Name:   "exp",
			Usage:  "map a rotation vector to a rotation",
			Action: ExpAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     vectorFlag,
					Required: true,
					Usage:    "rotation vector as x,y,z",
				},
				&cli.BoolFlag{
					Name:  generalFlagDegrees,
					Usage: "read the vector in degrees",
				},
				toFlagDef,
			},
		},
		{
			Name:   "log",
			Usage:  "map a rotation to its rotation vector",
			Action: LogAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     orientationFlag,
					Required: true,
					Usage:    orientationUsage,
				},
				&cli.BoolFlag{
					Name:  generalFlagDegrees,
					Usage: "print the vector in degrees",
				},
			},
		},
		{
			Name:   "random",
			Usage:  "sample uniformly distributed random orientations",
			Action: RandomAction,
			Flags: []cli.Flag{
				toFlagDef,
				seedFlagDef,
				&cli.IntFlag{
					Name:  randomFlagCount,
					Value: 1,
					Usage: "number of orientations to sample",
				},
			},
		},
		{
			Name:   "schema",
			Usage:  "print the JSON schema of orientation arguments",
			Action: SchemaAction,
		},
		{
			Name:   "check",
			Usage:  "measure round trip and associativity errors for every pair of representations",
			Action: CheckAction,
			Flags: []cli.Flag{
				seedFlagDef,
				&cli.IntFlag{
					Name:  checkFlagSamples,
					Value: 1000,
					Usage: "number of random samples per pair",
				},
				&cli.Float64Flag{
					Name:  checkFlagTolerance,
					Value: 1e-9,
					Usage: "largest acceptable error in radians",
				},
				&cli.IntFlag{
					Name:  checkFlagHistogram,
					Usage: "print a histogram with this many bins of the round trip errors of the worst pair",
				},
			},
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format+"\n", a...)
}
