package msgs

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ISC-Project-Phoenix/phnx-candefs/can"
)

// FromFrame converts a raw bus frame into its catalog message. Standard
// (11-bit) identifiers, identifiers outside the catalog, and payloads
// shorter than the matched layout all fail with ERR_INVALID_FRAME. Trailing
// payload bytes beyond the layout are ignored.
func FromFrame(f can.Frame) (Message, error) {
	if !f.Extended {
		return nil, fmt.Errorf("%w: standard identifier 0x%X", ERR_INVALID_FRAME, f.ID)
	}

	data := f.Payload()
	switch f.ID {
	case ID_AUTON_DISABLE:
		return AutonDisable{}, nil

	case ID_SET_BRAKE:
		if len(data) < 1 {
			return nil, shortPayload(f.ID, 1, len(data))
		}
		return SetBrake{Percent: data[0]}, nil

	case ID_LOCK_BRAKE:
		return LockBrake{}, nil

	case ID_UNLOCK_BRAKE:
		return UnlockBrake{}, nil

	case ID_SET_ANGLE:
		if len(data) < 4 {
			return nil, shortPayload(f.ID, 4, len(data))
		}
		return SetAngle{Angle: float32FromLE(data[0:4])}, nil

	case ID_GET_ANGLE:
		if len(data) < 4 {
			return nil, shortPayload(f.ID, 4, len(data))
		}
		return GetAngle{Angle: float32FromLE(data[0:4])}, nil

	case ID_SET_SPEED:
		if len(data) < 1 {
			return nil, shortPayload(f.ID, 1, len(data))
		}
		return SetSpeed{Percent: data[0]}, nil

	case ID_ENCODER_COUNT:
		if len(data) < 6 {
			return nil, shortPayload(f.ID, 6, len(data))
		}
		return EncoderCount{
			Count:    binary.LittleEndian.Uint16(data[0:2]),
			Velocity: float32FromLE(data[2:6]),
		}, nil

	case ID_TRAINING_MODE:
		return TrainingMode{}, nil

	default:
		return nil, fmt.Errorf("%w: unknown identifier 0x%X", ERR_INVALID_FRAME, f.ID)
	}
}

func shortPayload(id uint32, need, got int) error {
	return fmt.Errorf("%w: id 0x%X payload is %d bytes, need %d", ERR_INVALID_FRAME, id, got, need)
}

func float32FromLE(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
