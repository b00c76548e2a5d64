package probe

import "encoding/binary"

// decodeBits unpacks a Modbus bit response (LSB-first within each byte)
// into at most count booleans.
func decodeBits(data []byte, count int) []bool {
	bits := make([]bool, 0, count)
	for i := 0; i < count; i++ {
		byteIdx := i / 8
		if byteIdx >= len(data) {
			break
		}
		bits = append(bits, data[byteIdx]>>(uint(i)%8)&1 == 1)
	}
	return bits
}

// decodeRegisters unpacks a Modbus register response (big-endian 16-bit
// words) into values.
func decodeRegisters(data []byte) []uint16 {
	regs := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		regs = append(regs, binary.BigEndian.Uint16(data[i:i+2]))
	}
	return regs
}
