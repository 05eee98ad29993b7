// Package msgs defines the application-layer message catalog for the
// Phoenix control bus and the codec between typed messages and raw CAN
// frames. Every message maps to exactly one 29-bit extended identifier;
// multi-byte fields are laid out little-endian at fixed offsets. The codec
// is pure: no I/O, no state between calls.
package msgs

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ISC-Project-Phoenix/phnx-candefs/can"
)

// Fixed extended identifiers, one per message. The set is closed; anything
// outside it is reserved and fails decode.
const (
	ID_AUTON_DISABLE uint32 = 0x0
	ID_SET_BRAKE     uint32 = 0x1
	ID_LOCK_BRAKE    uint32 = 0x2
	ID_UNLOCK_BRAKE  uint32 = 0x3
	ID_SET_ANGLE     uint32 = 0x4
	ID_GET_ANGLE     uint32 = 0x5
	ID_SET_SPEED     uint32 = 0x6
	ID_ENCODER_COUNT uint32 = 0x7
	ID_TRAINING_MODE uint32 = 0x8
)

// Message is one typed frame from the Phoenix catalog. Every message knows
// its fixed extended identifier and how its fields are laid out on the wire.
type Message interface {
	// CANID returns the fixed 29-bit identifier for this message type.
	CANID() uint32

	// Frame serializes the message into a bus frame carrying its
	// identifier.
	Frame() (can.Frame, error)
}

// newFrame routes construction through the frame layer so its rejections
// surface as codec errors rather than being swallowed.
func newFrame(id uint32, payload []byte) (can.Frame, error) {
	f, err := can.NewExtendedFrame(id, payload)
	if err != nil {
		return can.Frame{}, fmt.Errorf("%w: %v", ERR_INVALID_FRAME, err)
	}
	return f, nil
}

// AutonDisable tells the interface board to stop relaying drive commands
// onto the bus; the host transitions to teleop when it sees one. There is no
// corresponding enable message, auton is re-armed with the physical switch.
type AutonDisable struct{}

func (AutonDisable) CANID() uint32 { return ID_AUTON_DISABLE }

func (m AutonDisable) Frame() (can.Frame, error) {
	return newFrame(ID_AUTON_DISABLE, nil)
}

// SetBrake commands brake engagement on a 0-255 scale.
type SetBrake struct {
	Percent uint8
}

func (SetBrake) CANID() uint32 { return ID_SET_BRAKE }

func (m SetBrake) Frame() (can.Frame, error) {
	return newFrame(ID_SET_BRAKE, []byte{m.Percent})
}

// LockBrake stops further brake messages from being forwarded to the bus.
type LockBrake struct{}

func (LockBrake) CANID() uint32 { return ID_LOCK_BRAKE }

func (m LockBrake) Frame() (can.Frame, error) {
	return newFrame(ID_LOCK_BRAKE, nil)
}

// UnlockBrake resumes forwarding of brake messages, if locked.
type UnlockBrake struct{}

func (UnlockBrake) CANID() uint32 { return ID_UNLOCK_BRAKE }

func (m UnlockBrake) Frame() (can.Frame, error) {
	return newFrame(ID_UNLOCK_BRAKE, nil)
}

// SetAngle commands the steering motor to an angle and holds it there until
// superseded.
type SetAngle struct {
	// Degrees; left is negative, right is positive.
	Angle float32
}

func (SetAngle) CANID() uint32 { return ID_SET_ANGLE }

func (m SetAngle) Frame() (can.Frame, error) {
	var data [4]byte
	binary.LittleEndian.PutUint32(data[:], math.Float32bits(m.Angle))
	return newFrame(ID_SET_ANGLE, data[:])
}

// GetAngle reports the current steering angle of the motor.
type GetAngle struct {
	// Degrees; left is negative, right is positive.
	Angle float32
}

func (GetAngle) CANID() uint32 { return ID_GET_ANGLE }

func (m GetAngle) Frame() (can.Frame, error) {
	var data [4]byte
	binary.LittleEndian.PutUint32(data[:], math.Float32bits(m.Angle))
	return newFrame(ID_GET_ANGLE, data[:])
}

// Empirical calibration for the steering linkage. These were fit against the
// physical kart and must be re-measured if the linkage changes.
const (
	ackermannGain   float32 = 2.62
	ackermannOffset float32 = -0.832
)

// AckermannAngle converts the reported steering column angle to the
// equivalent wheel angle.
func (m GetAngle) AckermannAngle() float32 {
	return m.Angle*ackermannGain + ackermannOffset
}

// SetSpeed commands the drive motor speed on a 0-255 scale.
type SetSpeed struct {
	Percent uint8
}

func (SetSpeed) CANID() uint32 { return ID_SET_SPEED }

func (m SetSpeed) Frame() (can.Frame, error) {
	return newFrame(ID_SET_SPEED, []byte{m.Percent})
}

// EncoderCount reports drive encoder ticks since the last report plus the
// instantaneous velocity.
type EncoderCount struct {
	Count uint16
	// Velocity in m/s.
	Velocity float32
}

func (EncoderCount) CANID() uint32 { return ID_ENCODER_COUNT }

func (m EncoderCount) Frame() (can.Frame, error) {
	var data [6]byte
	binary.LittleEndian.PutUint16(data[0:2], m.Count)
	binary.LittleEndian.PutUint32(data[2:6], math.Float32bits(m.Velocity))
	return newFrame(ID_ENCODER_COUNT, data[:])
}

// TrainingMode engages data collection: any node that receives it begins
// relaying extra data on the bus. There is no exit message; training mode
// ends when CAN is power cycled.
type TrainingMode struct{}

func (TrainingMode) CANID() uint32 { return ID_TRAINING_MODE }

func (m TrainingMode) Frame() (can.Frame, error) {
	return newFrame(ID_TRAINING_MODE, nil)
}
