package mda

import "fmt"

// DataType identifies the element type of an array. The set is closed;
// type codes and byte widths are fixed by the on-disk format.
type DataType int

// Supported element types.
const (
	Uint8 DataType = iota
	Float32
	Int16
	Int32
	Uint16
	Float64
	Uint32
)

// Code returns the on-disk type code. It panics on values outside the
// enumeration; such values cannot be constructed from decoded input.
func (dt DataType) Code() int32 {
	switch dt {
	case Uint8:
		return -2
	case Float32:
		return -3
	case Int16:
		return -4
	case Int32:
		return -5
	case Uint16:
		return -6
	case Float64:
		return -7
	case Uint32:
		return -8
	}
	panic(fmt.Sprintf("mda: invalid DataType %d", int(dt)))
}

// Size returns the element width in bytes. It panics on values outside
// the enumeration.
func (dt DataType) Size() int {
	switch dt {
	case Uint8:
		return 1
	case Float32:
		return 4
	case Int16:
		return 2
	case Int32:
		return 4
	case Uint16:
		return 2
	case Float64:
		return 8
	case Uint32:
		return 4
	}
	panic(fmt.Sprintf("mda: invalid DataType %d", int(dt)))
}

// String returns the conventional name of the type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Float32:
		return "float32"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Uint16:
		return "uint16"
	case Float64:
		return "float64"
	case Uint32:
		return "uint32"
	}
	return fmt.Sprintf("DataType(%d)", int(dt))
}

// DataTypeFromCode maps an on-disk type code back to its DataType.
// Unknown codes are a decode failure, never a default.
func DataTypeFromCode(code int32) (DataType, error) {
	switch code {
	case -2:
		return Uint8, nil
	case -3:
		return Float32, nil
	case -4:
		return Int16, nil
	case -5:
		return Int32, nil
	case -6:
		return Uint16, nil
	case -7:
		return Float64, nil
	case -8:
		return Uint32, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownTypeCode, code)
}
