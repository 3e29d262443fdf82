package endian

// Order is the byte order enum.
type Order uint8

// Byte orders a host may use.
const (
	// LittleEndian stores the least significant byte at the lowest address.
	LittleEndian Order = iota
	// BigEndian stores the most significant byte at the lowest address.
	BigEndian
)

// String implements Stringer interface.
func (o Order) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	}
	return "unknown"
}
