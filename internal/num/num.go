package num

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Clamp forces value into the [min, max] range, both inclusive.
func Clamp[T number](min T, value T, max T) T {
	switch {
	case value < min:
		return min
	case value > max:
		return max
	default:
		return value
	}
}
