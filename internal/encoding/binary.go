package encoding

import (
	"encoding/binary"
)

// FromBytes8 turns a []byte into a uint8.
func FromBytes8(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	if len(data) == 1 {
		data = []byte{0x00, data[0]}
	}
	// there isn't a Uint8 function
	i16 := binary.BigEndian.Uint16(data)
	return uint8(i16)
}

// ToBytes8 turns uint8 into []byte of len 1 (eg. 8 bits)
func ToBytes8(in uint8) []byte {
	// uint8 is only one byte anyways right
	return []byte{in}
}
