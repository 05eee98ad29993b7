package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ISC-Project-Phoenix/phnx-candefs/can"
)

// parseCandumpLine extracts a frame from a candump log line:
// (timestamp) interface ID#PAYLOAD
func parseCandumpLine(line string) (can.Frame, error) {
	idxHash := strings.Index(line, "#")
	if idxHash == -1 {
		return can.Frame{}, fmt.Errorf("no # separator found")
	}

	idPart := strings.TrimSpace(line[:idxHash])

	// strip timestamps like (1234.567890)
	if idx := strings.LastIndex(idPart, ")"); idx != -1 {
		idPart = idPart[idx+1:]
	}
	idPart = strings.TrimSpace(idPart)

	// strip the interface name (can0, vcan0, etc.)
	if idx := strings.LastIndex(idPart, " "); idx != -1 {
		idPart = idPart[idx+1:]
	}
	idPart = strings.TrimSpace(idPart)

	id, err := strconv.ParseUint(idPart, 16, 32)
	if err != nil {
		return can.Frame{}, fmt.Errorf("invalid identifier %q: %v", idPart, err)
	}

	payloadHex := strings.ReplaceAll(line[idxHash+1:], " ", "")
	payload, err := hex.DecodeString(strings.TrimSpace(payloadHex))
	if err != nil {
		return can.Frame{}, err
	}

	// candump prints extended identifiers with 8 hex digits, standard with 3
	if len(idPart) > 3 {
		return can.NewExtendedFrame(uint32(id), payload)
	}
	return can.NewStandardFrame(uint32(id), payload)
}
