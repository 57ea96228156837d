package kind

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindUndefined
	KindNaN
	KindArray
	KindDate
	KindRegexp
	KindMap
	KindSet
	KindObject
	KindString
	KindNumber
	KindBool

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Tag returns the lowercase tag used in type histories, synthesized
// names and error messages.
func (k KindEnum) Tag() string {
	switch k {
	default:
		return "invalid"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindNaN:
		return "nan"
	case KindArray:
		return "array"
	case KindDate:
		return "date"
	case KindRegexp:
		return "regexp"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindObject:
		return "object"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	}
}

// IsContainer reports whether the kind carries a mutable payload that
// collection operations may address.
func (k KindEnum) IsContainer() bool {
	switch k {
	default:
		return false
	case KindArray, KindMap, KindSet, KindObject:
		return true
	}
}

// IsScalar reports whether the kind wraps an immutable primitive.
func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindNull, KindUndefined, KindNaN, KindString, KindNumber, KindBool:
		return true
	}
}
