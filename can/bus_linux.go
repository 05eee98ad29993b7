package can

import (
	"net"

	"golang.org/x/sys/unix"
)

// Bus is a raw SocketCAN connection bound to a single interface. Send and
// Receive may be used from different goroutines.
type Bus struct {
	fd int
}

// Open binds a raw CAN socket to the named interface (e.g. "can0").
func Open(ifname string) (bus *Bus, err error) {
	iface, err := net.InterfaceByName(ifname)
	if err != nil {
		return
	}

	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_RAW, unix.CAN_RAW)
	if err != nil {
		return
	}

	addr := &unix.SockaddrCAN{Ifindex: iface.Index}
	if err = unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return
	}

	return &Bus{fd: fd}, nil
}

// Send writes a single frame to the bus.
func (b *Bus) Send(f Frame) error {
	raw, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = unix.Write(b.fd, raw)
	return err
}

// Receive blocks until the next frame arrives on the interface.
func (b *Bus) Receive() (Frame, error) {
	raw := make([]byte, FrameWireSize)
	n, err := unix.Read(b.fd, raw)
	if err != nil {
		return Frame{}, err
	}

	var f Frame
	if err := f.UnmarshalBinary(raw[:n]); err != nil {
		return Frame{}, err
	}
	return f, nil
}

func (b *Bus) Close() error {
	return unix.Close(b.fd)
}
