package msgs

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ISC-Project-Phoenix/phnx-candefs/can"
)

func TestFromFrameRejections(t *testing.T) {
	Convey("an extended frame outside the catalog fails", t, func() {
		f, err := can.NewExtendedFrame(0x9, []byte{1, 2, 3})
		So(err, ShouldBeNil)

		_, err = FromFrame(f)
		So(errors.Is(err, ERR_INVALID_FRAME), ShouldBeTrue)
	})

	Convey("a standard identifier fails regardless of payload", t, func() {
		// 0x5 would be GetAngle if it were extended
		f, err := can.NewStandardFrame(0x5, []byte{0, 0, 0, 0})
		So(err, ShouldBeNil)

		_, err = FromFrame(f)
		So(errors.Is(err, ERR_INVALID_FRAME), ShouldBeTrue)
	})

	Convey("payloads shorter than the layout fail", t, func() {
		cases := map[uint32][]byte{
			ID_SET_BRAKE:     {},
			ID_SET_SPEED:     {},
			ID_SET_ANGLE:     {0x01, 0x02, 0x03},
			ID_GET_ANGLE:     {0x01},
			ID_ENCODER_COUNT: {0x01, 0x02, 0x03, 0x04, 0x05},
		}

		for id, payload := range cases {
			f, err := can.NewExtendedFrame(id, payload)
			So(err, ShouldBeNil)

			_, err = FromFrame(f)
			So(errors.Is(err, ERR_INVALID_FRAME), ShouldBeTrue)
		}
	})
}

func TestFromFrameTrailingBytes(t *testing.T) {
	Convey("trailing bytes beyond the layout are ignored", t, func() {
		Convey("for a single byte message padded to the full frame", func() {
			f, err := can.NewExtendedFrame(ID_SET_SPEED, []byte{80, 0xDE, 0xAD, 0xBE, 0xEF, 0, 0, 0})
			So(err, ShouldBeNil)

			m, err := FromFrame(f)
			So(err, ShouldBeNil)
			So(m, ShouldResemble, SetSpeed{Percent: 80})
		})

		Convey("for a fieldless message carrying stray data", func() {
			f, err := can.NewExtendedFrame(ID_TRAINING_MODE, []byte{1, 2, 3})
			So(err, ShouldBeNil)

			m, err := FromFrame(f)
			So(err, ShouldBeNil)
			So(m, ShouldResemble, TrainingMode{})
		})
	})
}

func TestFromFrameZeroValues(t *testing.T) {
	Convey("all-zero payloads decode to zero fields, not errors", t, func() {
		f, err := can.NewExtendedFrame(ID_SET_ANGLE, []byte{0, 0, 0, 0})
		So(err, ShouldBeNil)

		m, err := FromFrame(f)
		So(err, ShouldBeNil)
		So(m, ShouldResemble, SetAngle{Angle: 0})
	})
}
