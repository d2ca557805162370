package cpu

// Bus is the narrow view of the Memory Fabric that the CPU needs: byte and
// little-endian word access. Satisfied structurally by *memory.Fabric.
type Bus interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, val uint8)
	ReadWord(addr uint16) uint16
	WriteWord(addr uint16, val uint16)
}
