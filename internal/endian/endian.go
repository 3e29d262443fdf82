package endian

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// ErrOrderMismatch is returned by Verify when the detected byte order
// differs from the one declared for the GOARCH.
var ErrOrderMismatch = errors.New("byte order mismatch")

var (
	// ByteOrder is the host byte order, either binary.BigEndian or binary.LittleEndian.
	ByteOrder binary.ByteOrder = binary.LittleEndian

	host = LittleEndian
)

func init() {
	if isBigEndian() {
		ByteOrder = binary.BigEndian
		host = BigEndian
	}
}

// isBigEndian overlays 0x0100 and checks whether its high byte comes first.
func isBigEndian() bool {
	i := uint16(0x0100)
	return *(*byte)(unsafe.Pointer(&i)) == 0x01
}

// Host returns the byte order detected for the running process.
func Host() Order {
	return host
}

// IsBig checks if the host uses big endian byte ordering.
func IsBig() bool {
	return host == BigEndian
}

// IsLittle checks if the host uses little endian byte ordering.
func IsLittle() bool {
	return host == LittleEndian
}

// ArchReportsBig returns the byte order golang.org/x/sys/cpu declares for the GOARCH.
func ArchReportsBig() bool {
	return cpu.IsBigEndian
}

// Verify cross checks the runtime detection against ArchReportsBig.
func Verify() error {
	if IsBig() != ArchReportsBig() {
		return fmt.Errorf("%w: detected %s, GOARCH declares big-endian=%t", ErrOrderMismatch, host, ArchReportsBig())
	}
	return nil
}
