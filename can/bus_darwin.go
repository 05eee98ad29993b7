package can

// SocketCAN does not exist on darwin; this Bus is a loopback stand-in so the
// tools remain usable for development. Sent frames are echoed back to
// Receive.
type Bus struct {
	echo chan Frame
}

func Open(ifname string) (bus *Bus, err error) {
	return &Bus{echo: make(chan Frame, 16)}, nil
}

func (b *Bus) Send(f Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	b.echo <- f
	return nil
}

func (b *Bus) Receive() (Frame, error) {
	return <-b.echo, nil
}

func (b *Bus) Close() error {
	close(b.echo)
	return nil
}
