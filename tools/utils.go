package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func FmtJSONString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "marshal data fail"
	}
	return string(data)
}

const (
	FloatMin = 0.000001
)

func IsFloatEqual(f1, f2 float64) bool {
	return math.Abs(f1-f2) < FloatMin
}

// ParseVec3 reads an "x,y,z" command line value.
func ParseVec3(value string) ([3]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return [3]float64{}, errors.Errorf("expected x,y,z, got %q", value)
	}
	var out [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, errors.Wrapf(err, "component %d of %q", i, value)
		}
		out[i] = f
	}
	return out, nil
}
