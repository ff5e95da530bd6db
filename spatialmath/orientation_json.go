package spatialmath

import (
	"encoding/json"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// OrientationType defines what orientation representation a config holds.
type OrientationType string

// The set of allowed representations for orientation.
const (
	NoOrientationType  = OrientationType("")
	RotationMatrixType = OrientationType("rotation_matrix")
	AxisAngleType      = OrientationType("axis_angle")
	QuaternionType     = OrientationType("quaternion")
	RotationVectorType = OrientationType("rotation_vector")
)

// configTolerance bounds the drift a hand-written rotation matrix may carry.
const configTolerance = 1e-6

// OrientationConfig holds the underlying type of orientation, and the value.
type OrientationConfig struct {
	Type  OrientationType `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// NewOrientationConfig creates an OrientationConfig from an Orientation.
func NewOrientationConfig(o Orientation[float64]) (*OrientationConfig, error) {
	if o == nil {
		return nil, errors.New("cannot create a config for a nil orientation")
	}
	bytes, err := json.Marshal(o.repData())
	if err != nil {
		return nil, err
	}
	return &OrientationConfig{Type: OrientationType(o.Kind().String()), Value: bytes}, nil
}

// ParseConfig converts an OrientationConfig into an Orientation. An empty type is the identity.
// Quaternions and axes are normalized; rotation matrices must already be orthonormal.
func (config *OrientationConfig) ParseConfig() (Orientation[float64], error) {
	if config.Type == NoOrientationType {
		return NewSO3[float64, Quaternion[float64]](), nil
	}
	kind, err := config.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case RotationMatrixKind:
		var m Matrix3[float64]
		if err := json.Unmarshal(config.Value, &m); err != nil {
			return nil, err
		}
		return newConfiguredOrientation[float64](m)
	case AxisAngleKind:
		var aa AxisAngle[float64]
		if err := json.Unmarshal(config.Value, &aa); err != nil {
			return nil, err
		}
		return newConfiguredOrientation[float64](aa)
	case QuaternionKind:
		var q Quaternion[float64]
		if err := json.Unmarshal(config.Value, &q); err != nil {
			return nil, err
		}
		return newConfiguredOrientation[float64](q)
	default:
		var v Vector3[float64]
		if err := json.Unmarshal(config.Value, &v); err != nil {
			return nil, err
		}
		return newConfiguredOrientation[float64](v)
	}
}

func (config *OrientationConfig) kind() (Kind, error) {
	kind, err := ParseKind(string(config.Type))
	if err != nil {
		return 0, errors.Errorf("orientation type %s not recognized", config.Type)
	}
	return kind, nil
}

// OrientationConfigFromAttributes decodes an orientation from a loosely typed attribute map such as
// {"type": "axis_angle", "value": {"axis": [0, 0, 1], "angle": 1.57}}.
func OrientationConfigFromAttributes(attrs map[string]interface{}) (Orientation[float64], error) {
	var raw struct {
		Type  OrientationType `json:"type"`
		Value interface{}     `json:"value"`
	}
	if err := decodeAttributes(attrs, &raw); err != nil {
		return nil, err
	}
	config := OrientationConfig{Type: raw.Type}
	if raw.Type == NoOrientationType {
		return config.ParseConfig()
	}
	kind, err := config.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case RotationMatrixKind:
		var m Matrix3[float64]
		if err := decodeAttributes(raw.Value, &m); err != nil {
			return nil, err
		}
		return newConfiguredOrientation[float64](m)
	case AxisAngleKind:
		var aa AxisAngle[float64]
		if err := decodeAttributes(raw.Value, &aa); err != nil {
			return nil, err
		}
		return newConfiguredOrientation[float64](aa)
	case QuaternionKind:
		var q Quaternion[float64]
		if err := decodeAttributes(raw.Value, &q); err != nil {
			return nil, err
		}
		return newConfiguredOrientation[float64](q)
	default:
		var v Vector3[float64]
		if err := decodeAttributes(raw.Value, &v); err != nil {
			return nil, err
		}
		return newConfiguredOrientation[float64](v)
	}
}

func decodeAttributes(input, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: result})
	if err != nil {
		return errors.Wrap(err, "error creating decoder for orientation attributes")
	}
	return errors.Wrap(decoder.Decode(input), "error decoding orientation attributes")
}

// newConfiguredOrientation tidies hand-written data before validating it.
func newConfiguredOrientation[S Float, D RepData[S]](data D) (Orientation[S], error) {
	switch d := any(data).(type) {
	case Quaternion[S]:
		if d.Norm() == 0 {
			return nil, errors.New("quaternion must not be zero")
		}
		data = any(d.Normalize()).(D)
	case AxisAngle[S]:
		if d.Angle != 0 {
			if d.Axis.IsZero() {
				return nil, errors.Errorf("axis angle %v with a nonzero angle must have a nonzero axis", d)
			}
			data = any(d.Normalize()).(D)
		}
	}
	if err := ValidateRepData[S](data, configTolerance); err != nil {
		return nil, err
	}
	return SO3[S, D]{data: data}, nil
}

// OrientationMap encodes the orientation interface to something serializable and human readable.
func OrientationMap(o Orientation[float64]) (map[string]interface{}, error) {
	if o == nil {
		return nil, errors.New("do not know how to map a nil orientation to json fields")
	}
	return map[string]interface{}{
		"type":  o.Kind().String(),
		"value": o.repData(),
	}, nil
}
