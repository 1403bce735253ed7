package cpu

// addrMode enumerates the 65C02 addressing modes, exhaustive per the
// decode table the core is required to implement.
type addrMode uint8

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeIndexedIndirectX // (zp,X)
	modeIndirectIndexedY // (zp),Y
	modeIndirectZP       // (zp)
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect       // (abs), JMP only
	modeAbsoluteIndexedIndirect // (abs,X), JMP only
	modeRelative
	modeZeroPageRelative // zp,rel -- BBRx/BBSx
)

// operand is the decoded addressing-mode result handed to the mnemonic
// executor. For modes that produce a memory location, addr is valid; for
// Immediate and Accumulator, value/useAcc carry the operand directly;
// Relative and ZeroPageRelative additionally carry a branch offset.
type operand struct {
	addr        uint16
	value       uint8
	useAcc      bool
	rel         int8
	pageCrossed bool
}

// decodeOperand reads the bytes following the opcode from bus, advancing
// PC, and resolves the effective address or immediate value for mode.
// Every byte read goes through bus.Read, preserving the side-effecting read
// semantics the address space requires.
func (c *CPU) decodeOperand(bus Bus, mode addrMode) operand {
	switch mode {
	case modeImplied:
		return operand{}
	case modeAccumulator:
		return operand{useAcc: true, value: c.A}
	case modeImmediate:
		v := bus.Read(c.PC)
		c.PC++
		return operand{value: v}
	case modeRelative:
		v := bus.Read(c.PC)
		c.PC++
		return operand{rel: int8(v)}
	case modeZeroPage:
		zp := bus.Read(c.PC)
		c.PC++
		return operand{addr: uint16(zp)}
	case modeZeroPageX:
		zp := bus.Read(c.PC)
		c.PC++
		return operand{addr: uint16(zp + c.X)}
	case modeZeroPageY:
		zp := bus.Read(c.PC)
		c.PC++
		return operand{addr: uint16(zp + c.Y)}
	case modeIndexedIndirectX:
		zp := bus.Read(c.PC)
		c.PC++
		ptr := zp + c.X
		lo := bus.Read(uint16(ptr))
		hi := bus.Read(uint16(ptr + 1))
		return operand{addr: combine(hi, lo)}
	case modeIndirectIndexedY:
		zp := bus.Read(c.PC)
		c.PC++
		lo := bus.Read(uint16(zp))
		hi := bus.Read(uint16(zp + 1))
		base := combine(hi, lo)
		eff := base + uint16(c.Y)
		return operand{addr: eff, pageCrossed: !samePage(base, eff)}
	case modeIndirectZP:
		zp := bus.Read(c.PC)
		c.PC++
		lo := bus.Read(uint16(zp))
		hi := bus.Read(uint16(zp + 1))
		return operand{addr: combine(hi, lo)}
	case modeAbsolute:
		lo := bus.Read(c.PC)
		c.PC++
		hi := bus.Read(c.PC)
		c.PC++
		return operand{addr: combine(hi, lo)}
	case modeAbsoluteX:
		lo := bus.Read(c.PC)
		c.PC++
		hi := bus.Read(c.PC)
		c.PC++
		base := combine(hi, lo)
		eff := base + uint16(c.X)
		return operand{addr: eff, pageCrossed: !samePage(base, eff)}
	case modeAbsoluteY:
		lo := bus.Read(c.PC)
		c.PC++
		hi := bus.Read(c.PC)
		c.PC++
		base := combine(hi, lo)
		eff := base + uint16(c.Y)
		return operand{addr: eff, pageCrossed: !samePage(base, eff)}
	case modeIndirect:
		lo := bus.Read(c.PC)
		c.PC++
		hi := bus.Read(c.PC)
		c.PC++
		ptr := combine(hi, lo)
		rlo := bus.Read(ptr)
		rhi := bus.Read(ptr + 1)
		return operand{addr: combine(rhi, rlo)}
	case modeAbsoluteIndexedIndirect:
		lo := bus.Read(c.PC)
		c.PC++
		hi := bus.Read(c.PC)
		c.PC++
		base := combine(hi, lo)
		ptr := base + uint16(c.X)
		rlo := bus.Read(ptr)
		rhi := bus.Read(ptr + 1)
		return operand{addr: combine(rhi, rlo)}
	case modeZeroPageRelative:
		zp := bus.Read(c.PC)
		c.PC++
		v := bus.Read(c.PC)
		c.PC++
		return operand{addr: uint16(zp), rel: int8(v)}
	default:
		return operand{}
	}
}

func combine(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}
