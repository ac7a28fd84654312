package number

import (
	"math"
	"strconv"
)

var epsilon float64 = 0.000001

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func FloatToStr(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}
