package cli

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/urfave/cli/v2"

	"go.viam.com/so3/spatialmath"
)

var (
	orientationTypeType = reflect.TypeOf(spatialmath.OrientationType(""))
	rawMessageType      = reflect.TypeOf(json.RawMessage{})
)

// orientationSchema describes the JSON accepted by --orientation. The "value" field is one of the
// four representation shapes, selected by "type".
func orientationSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			switch t {
			case orientationTypeType:
				return orientationTypeSchema()
			case rawMessageType:
				return orientationValueSchema()
			default:
				return nil
			}
		},
	}
	return r.Reflect(&spatialmath.OrientationConfig{})
}

func orientationTypeSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string", Description: "representation of value; empty is the identity"}
	s.Enum = append(s.Enum, string(spatialmath.NoOrientationType))
	for _, kind := range spatialmath.Kinds {
		s.Enum = append(s.Enum, kind.String())
	}
	return s
}

func orientationValueSchema() *jsonschema.Schema {
	inline := &jsonschema.Reflector{DoNotReference: true, Anonymous: true}
	shapes := []struct {
		sample      interface{}
		description string
	}{
		{spatialmath.Matrix3[float64]{}, "rotation_matrix: three rows of three numbers"},
		{spatialmath.AxisAngle[float64]{}, "axis_angle: axis and angle in radians"},
		{spatialmath.Quaternion[float64]{}, "quaternion: w, x, y and z, normalized on load"},
		{spatialmath.Vector3[float64]{}, "rotation_vector: axis scaled by the angle in radians"},
	}
	value := &jsonschema.Schema{}
	for _, shape := range shapes {
		s := inline.Reflect(shape.sample)
		s.Version = ""
		s.Description = shape.description
		value.OneOf = append(value.OneOf, s)
	}
	return value
}

// SchemaAction is the corresponding action for 'schema'.
func SchemaAction(c *cli.Context) error {
	bytes, err := json.MarshalIndent(orientationSchema(), "", "  ")
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", bytes)
	return nil
}
