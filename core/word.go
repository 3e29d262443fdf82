package core

import (
	"fmt"
	"unsafe"

	"github.com/moolekkari/endianprobe/internal/endian"
)

// Word is a 16-bit unsigned value.
type Word uint16

// Pair is two byte values in the order they were read.
type Pair struct {
	First  byte
	Second byte
}

// String implements Stringer interface.
func (p Pair) String() string {
	return fmt.Sprintf("%d %d", p.First, p.Second)
}

// Swap returns the pair with its values exchanged.
func (p Pair) Swap() Pair {
	return Pair{First: p.Second, Second: p.First}
}

// Join builds a word from its high and low bytes.
func Join(high, low byte) Word {
	return Word(high)<<8 | Word(low)
}

// Low returns the least significant byte.
func (w Word) Low() byte {
	return byte(w & 0x00ff)
}

// High returns the most significant byte.
func (w Word) High() byte {
	return byte(w >> 8)
}

// Portable returns the low byte followed by the high byte, computed
// arithmetically. The result does not depend on the host.
func (w Word) Portable() Pair {
	return Pair{First: w.Low(), Second: w.High()}
}

// Overlay reads the word's storage as two adjacent bytes and returns them in
// memory order. Little endian hosts give the low byte first, big endian hosts
// the high byte.
func (w Word) Overlay() Pair {
	b := (*[2]byte)(unsafe.Pointer(&w))
	return Pair{First: b[0], Second: b[1]}
}

// Native encodes the word with the host byte order.
func (w Word) Native() []byte {
	buf := make([]byte, 2)
	endian.ByteOrder.PutUint16(buf, uint16(w))
	return buf
}
