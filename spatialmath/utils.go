package spatialmath

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// ParseVector3 reads a vector from three comma or space delimited fields, such as "0,0,1.57" or "0 0 1.57".
func ParseVector3[S Float](s string) (Vector3[S], error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	var v Vector3[S]
	if len(fields) != len(v) {
		return v, errors.Errorf("expected 3 components in vector %q, got %d", s, len(fields))
	}
	for i, field := range fields {
		value, err := cast.ToFloat64E(field)
		if err != nil {
			return v, errors.Wrapf(err, "invalid component %d of vector %q", i, s)
		}
		v[i] = S(value)
	}
	return v, nil
}
