package cpu

// Bus is the address-space participant the CPU executes against. Reads are
// side-effecting (a peripheral may clear a status bit or pop a FIFO entry),
// so every fetch, operand read, and stack pop goes through it rather than
// touching memory directly.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}
