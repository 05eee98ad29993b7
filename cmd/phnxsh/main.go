// phnxsh is an interactive shell for poking the Phoenix control bus: it
// encodes catalog messages and puts them on a SocketCAN interface, or just
// prints the frames in dry-run mode.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/ISC-Project-Phoenix/phnx-candefs/can"
	"github.com/ISC-Project-Phoenix/phnx-candefs/msgs"
)

type sender interface {
	Send(can.Frame) error
}

// printSender renders frames instead of transmitting them.
type printSender struct{}

func (printSender) Send(f can.Frame) error {
	fmt.Printf("dry-run: %s\n", f)
	return nil
}

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "c", "", "YAML config file")
	flag.Parse()

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	var out sender = printSender{}
	if !cfg.DryRun {
		bus, err := can.Open(cfg.Interface)
		if err != nil {
			log.Fatal(err)
		}
		defer bus.Close()
		out = bus
	}

	shell := ishell.New()
	shell.Println("Phoenix control bus shell")
	shell.ShowPrompt(true)

	send := func(c *ishell.Context, m msgs.Message) {
		f, err := m.Frame()
		if err != nil {
			c.Err(err)
			return
		}
		if err := out.Send(f); err != nil {
			c.Err(err)
			return
		}
		c.Printf("sent %s\n", f)
	}

	shell.AddCmd(&ishell.Cmd{
		Name: "brake",
		Help: "brake <percent 0-255>",
		Func: func(c *ishell.Context) {
			pct, err := parsePercent(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			send(c, msgs.SetBrake{Percent: pct})
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "speed",
		Help: "speed <percent 0-255>",
		Func: func(c *ishell.Context) {
			pct, err := parsePercent(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			send(c, msgs.SetSpeed{Percent: pct})
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "angle",
		Help: "angle <degrees, negative = left>",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(errors.New("angle requires a value in degrees"))
				return
			}
			deg, err := strconv.ParseFloat(c.Args[0], 32)
			if err != nil {
				c.Err(err)
				return
			}
			send(c, msgs.SetAngle{Angle: float32(deg)})
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "auton-disable",
		Help: "drop the bus out of autonomous mode",
		Func: func(c *ishell.Context) {
			send(c, msgs.AutonDisable{})
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "lock-brake",
		Help: "stop brake messages being forwarded",
		Func: func(c *ishell.Context) {
			send(c, msgs.LockBrake{})
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "unlock-brake",
		Help: "resume forwarding brake messages",
		Func: func(c *ishell.Context) {
			send(c, msgs.UnlockBrake{})
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "training",
		Help: "engage training mode (no way back without a power cycle)",
		Func: func(c *ishell.Context) {
			send(c, msgs.TrainingMode{})
		},
	})

	// telemetry injection for bench testing the host side
	shell.AddCmd(&ishell.Cmd{
		Name: "encoder",
		Help: "encoder <count> <velocity m/s>",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(errors.New("encoder requires a count and a velocity"))
				return
			}
			count, err := strconv.ParseUint(c.Args[0], 10, 16)
			if err != nil {
				c.Err(err)
				return
			}
			vel, err := strconv.ParseFloat(c.Args[1], 32)
			if err != nil {
				c.Err(err)
				return
			}
			send(c, msgs.EncoderCount{Count: uint16(count), Velocity: float32(vel)})
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "report-angle",
		Help: "report-angle <degrees> (inject a GetAngle report)",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(errors.New("report-angle requires a value in degrees"))
				return
			}
			deg, err := strconv.ParseFloat(c.Args[0], 32)
			if err != nil {
				c.Err(err)
				return
			}
			send(c, msgs.GetAngle{Angle: float32(deg)})
		},
	})

	shell.Run()
}

func parsePercent(args []string) (uint8, error) {
	if len(args) < 1 {
		return 0, errors.New("requires a percent between 0 and 255")
	}
	pct, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(pct), nil
}
