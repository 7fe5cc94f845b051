package listing

import (
	"math"
	"strconv"
)

var sizeUnits = [...]string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatSize renders a byte count. Without human it is the exact count,
// e.g. "500 B". With human it picks the largest unit the count reaches
// and prints two decimals, e.g. "1.00 kB". Any base other than Base1000
// is treated as Base1024.
func FormatSize(bytes uint64, human bool, base SizeBase) string {
	if !human {
		return strconv.FormatUint(bytes, 10) + " B"
	}

	divisor := float64(Base1024)
	if base == Base1000 {
		divisor = float64(Base1000)
	}

	value := float64(bytes)
	unit := 0
	for unit < len(sizeUnits)-1 && value >= math.Pow(divisor, float64(unit+1)) {
		unit++
	}

	quotient := value / math.Pow(divisor, float64(unit))
	return strconv.FormatFloat(quotient, 'f', 2, 64) + " " + sizeUnits[unit]
}
