package can

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

const (
	// Identifier limits for the two CAN 2.0 addressing variants.
	MaxStandardID = 0x7FF
	MaxExtendedID = 0x1FFFFFFF

	// MaxDataLen is the classical CAN payload limit.
	MaxDataLen = 8
)

// errors
var (
	ERR_ID_RANGE      = errors.New("identifier out of range")
	ERR_DATA_TOO_LONG = errors.New("data length exceeds 8 bytes")
	ERR_SHORT_BUFFER  = errors.New("buffer shorter than can_frame")
)

// Frame is a single classical CAN transmission unit: an identifier plus up
// to eight payload bytes. Frames are plain values; build one through
// NewExtendedFrame or NewStandardFrame and treat it as immutable afterwards.
type Frame struct {
	ID       uint32 // 11-bit standard or 29-bit extended identifier
	Extended bool   // true for the 29-bit identifier variant
	Len      uint8  // payload length, 0..8
	Data     [8]byte
}

// NewExtendedFrame builds a frame addressed with a 29-bit identifier.
// Rejects identifiers above MaxExtendedID and payloads over MaxDataLen.
func NewExtendedFrame(id uint32, data []byte) (Frame, error) {
	if id > MaxExtendedID {
		return Frame{}, fmt.Errorf("%w: 0x%X", ERR_ID_RANGE, id)
	}
	if len(data) > MaxDataLen {
		return Frame{}, fmt.Errorf("%w: %d", ERR_DATA_TOO_LONG, len(data))
	}

	f := Frame{
		ID:       id,
		Extended: true,
		Len:      uint8(len(data)),
	}
	copy(f.Data[:], data)
	return f, nil
}

// NewStandardFrame builds a frame addressed with an 11-bit identifier.
func NewStandardFrame(id uint32, data []byte) (Frame, error) {
	if id > MaxStandardID {
		return Frame{}, fmt.Errorf("%w: 0x%X", ERR_ID_RANGE, id)
	}
	if len(data) > MaxDataLen {
		return Frame{}, fmt.Errorf("%w: %d", ERR_DATA_TOO_LONG, len(data))
	}

	f := Frame{
		ID:  id,
		Len: uint8(len(data)),
	}
	copy(f.Data[:], data)
	return f, nil
}

// Payload returns the Len-bounded view of the frame data.
func (f Frame) Payload() []byte {
	return f.Data[:f.Len]
}

// Validate checks the identifier against the range of its addressing variant
// and the payload length against the bus limit.
func (f Frame) Validate() error {
	if f.Len > MaxDataLen {
		return fmt.Errorf("%w: %d", ERR_DATA_TOO_LONG, f.Len)
	}
	max := uint32(MaxStandardID)
	if f.Extended {
		max = MaxExtendedID
	}
	if f.ID > max {
		return fmt.Errorf("%w: 0x%X", ERR_ID_RANGE, f.ID)
	}
	return nil
}

func (f Frame) String() string {
	hex := make([]string, f.Len)
	for i := 0; i < int(f.Len); i++ {
		hex[i] = fmt.Sprintf("%02X", f.Data[i])
	}
	kind := "std"
	if f.Extended {
		kind = "ext"
	}
	return fmt.Sprintf("%s 0x%X [%d] %s", kind, f.ID, f.Len, strings.Join(hex, " "))
}

// Linux can_frame flag and mask values, mirrored here so the wire layout can
// be handled off-target as well.
const (
	canEffFlag = 0x80000000
	canRtrFlag = 0x40000000
	canEffMask = MaxExtendedID
	canSffMask = MaxStandardID

	// FrameWireSize is the size of a struct can_frame on the wire (CAN_MTU).
	FrameWireSize = 16
)

// MarshalBinary encodes the frame into the 16-byte SocketCAN can_frame
// layout: can_id with flags at [0:4] little-endian, DLC at [4], payload at
// [8:16].
func (f Frame) MarshalBinary() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	oid := f.ID
	if f.Extended {
		oid |= canEffFlag
	}

	raw := make([]byte, FrameWireSize)
	binary.LittleEndian.PutUint32(raw[0:4], oid)
	raw[4] = f.Len
	copy(raw[8:], f.Data[:])
	return raw, nil
}

// UnmarshalBinary decodes a frame from the SocketCAN can_frame layout.
func (f *Frame) UnmarshalBinary(raw []byte) error {
	if len(raw) < FrameWireSize {
		return fmt.Errorf("%w: %d bytes", ERR_SHORT_BUFFER, len(raw))
	}

	oid := binary.LittleEndian.Uint32(raw[0:4])
	f.Extended = oid&canEffFlag != 0
	if f.Extended {
		f.ID = oid & canEffMask
	} else {
		f.ID = oid & canSffMask
	}

	f.Len = raw[4]
	copy(f.Data[:], raw[8:16])
	return f.Validate()
}
