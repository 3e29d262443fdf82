package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) {
	TestingT(t)
}

type EndianSuite struct{}

var _ = Suite(&EndianSuite{})

func (s *EndianSuite) TestByteOrderIsInitialized(c *C) {
	c.Assert(ByteOrder, NotNil)
}

func (s *EndianSuite) TestExactlyOneOrder(c *C) {
	c.Assert(IsBig(), Not(Equals), IsLittle())
}

func (s *EndianSuite) TestHostMatchesByteOrder(c *C) {
	if IsBig() {
		c.Assert(Host(), Equals, BigEndian)
		c.Assert(ByteOrder, Equals, binary.ByteOrder(binary.BigEndian))
	} else {
		c.Assert(Host(), Equals, LittleEndian)
		c.Assert(ByteOrder, Equals, binary.ByteOrder(binary.LittleEndian))
	}
}

func (s *EndianSuite) TestByteOrderMatchesMemory(c *C) {
	v := uint32(0x01020304)
	mem := (*[4]byte)(unsafe.Pointer(&v))

	buf := make([]byte, 4)
	ByteOrder.PutUint32(buf, v)
	c.Assert(buf, DeepEquals, mem[:])
}

func (s *EndianSuite) TestVerify(c *C) {
	c.Assert(IsBig(), Equals, ArchReportsBig())
	c.Assert(Verify(), IsNil)
}

func (s *EndianSuite) TestOrderString(c *C) {
	c.Assert(LittleEndian.String(), Equals, "little-endian")
	c.Assert(BigEndian.String(), Equals, "big-endian")
	c.Assert(Order(7).String(), Equals, "unknown")
}
