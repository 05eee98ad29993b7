// phnxdump decodes candump-format log captures of the Phoenix control bus
// into human-readable catalog messages.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ISC-Project-Phoenix/phnx-candefs/msgs"
)

func main() {
	var path string
	flag.StringVar(&path, "f", "", "candump log file (defaults to stdin)")
	flag.Parse()

	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		frame, err := parseCandumpLine(line)
		if err != nil {
			fmt.Printf("%-50s !! %v\n", line, err)
			continue
		}

		m, err := msgs.FromFrame(frame)
		if err != nil {
			fmt.Printf("%-50s !! %v\n", line, err)
			continue
		}

		fmt.Printf("%-50s -> %s\n", line, describe(m))
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

// describe renders a decoded message for the terminal.
func describe(m msgs.Message) string {
	switch v := m.(type) {
	case msgs.AutonDisable:
		return "AutonDisable"
	case msgs.SetBrake:
		return fmt.Sprintf("SetBrake percent=%d", v.Percent)
	case msgs.LockBrake:
		return "LockBrake"
	case msgs.UnlockBrake:
		return "UnlockBrake"
	case msgs.SetAngle:
		return fmt.Sprintf("SetAngle angle=%.3fdeg", v.Angle)
	case msgs.GetAngle:
		return fmt.Sprintf("GetAngle angle=%.3fdeg wheel=%.3fdeg", v.Angle, v.AckermannAngle())
	case msgs.SetSpeed:
		return fmt.Sprintf("SetSpeed percent=%d", v.Percent)
	case msgs.EncoderCount:
		return fmt.Sprintf("EncoderCount count=%d velocity=%.3fm/s", v.Count, v.Velocity)
	case msgs.TrainingMode:
		return "TrainingMode"
	default:
		return fmt.Sprintf("%#v", m)
	}
}
