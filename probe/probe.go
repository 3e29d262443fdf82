// Package probe stores a known 16-bit value and reads its bytes back through an
// overlay of its storage and through shift/mask arithmetic, showing which of the
// two depends on the host byte order.
package probe

import (
	"fmt"
	"io"

	"github.com/moolekkari/endianprobe/common"
	"github.com/moolekkari/endianprobe/core"
	"github.com/moolekkari/endianprobe/internal/endian"
)

// Value is the probed word: high byte 1, low byte 2.
const Value = core.Word(0x0102)

// Result holds both readings of Value.
type Result struct {
	Value    core.Word
	Overlay  core.Pair
	Portable core.Pair
	Order    endian.Order
}

// Run reads Value through both views.
func Run() Result {
	v := Value
	r := Result{
		Value:    v,
		Overlay:  v.Overlay(),
		Portable: v.Portable(),
		Order:    endian.Host(),
	}
	common.Log.Trace("probe %#06x on %s host: overlay=%s portable=%s", uint16(v), r.Order, r.Overlay, r.Portable)
	return r
}

// Consistent reports whether the overlay reading is the one the host byte
// order predicts: equal to the portable pair on little endian hosts and
// reversed on big endian hosts.
func (r Result) Consistent() bool {
	if r.Order == endian.BigEndian {
		return r.Overlay == r.Portable.Swap()
	}
	return r.Overlay == r.Portable
}

// WriteTo writes the overlay pair and the portable pair to w, one per line.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%s\n%s\n", r.Overlay, r.Portable)
	if err != nil {
		return int64(n), fmt.Errorf("write probe result: %w", err)
	}
	return int64(n), nil
}
