package cpu

// opEntry is one row of the 65C02 decode table: the operation, its
// addressing mode, its base cycle count, whether a crossed page adds a
// cycle, and (for RMBn/SMBn/BBRn/BBSn) which bit of the operand it tests
// or modifies.
type opEntry struct {
	mn            mnemonic
	mode          addrMode
	cycles        uint8
	pageSensitive bool
	bitIndex      uint8
}

// opcodeTable is the full 256-entry WDC 65C02 decode table, including the
// Rockwell bit-branch/bit-set/bit-reset extensions and the defined-NOP
// slots the 65C02 assigns to every opcode the NMOS 6502 left illegal.
var opcodeTable = [256]opEntry{
	0x00: {mnBRK, modeImplied, 7, false, 0},
	0x01: {mnORA, modeIndexedIndirectX, 6, false, 0},
	0x02: {mnNOP, modeImmediate, 2, false, 0},
	0x03: {mnNOP, modeImplied, 1, false, 0},
	0x04: {mnTSB, modeZeroPage, 5, false, 0},
	0x05: {mnORA, modeZeroPage, 3, false, 0},
	0x06: {mnASL, modeZeroPage, 5, false, 0},
	0x07: {mnRMB, modeZeroPage, 5, false, 0},
	0x08: {mnPHP, modeImplied, 3, false, 0},
	0x09: {mnORA, modeImmediate, 2, false, 0},
	0x0A: {mnASL, modeAccumulator, 2, false, 0},
	0x0B: {mnNOP, modeImplied, 1, false, 0},
	0x0C: {mnTSB, modeAbsolute, 6, false, 0},
	0x0D: {mnORA, modeAbsolute, 4, false, 0},
	0x0E: {mnASL, modeAbsolute, 6, false, 0},
	0x0F: {mnBBR, modeZeroPageRelative, 5, false, 0},

	0x10: {mnBPL, modeRelative, 2, false, 0},
	0x11: {mnORA, modeIndirectIndexedY, 5, true, 0},
	0x12: {mnORA, modeIndirectZP, 5, false, 0},
	0x13: {mnNOP, modeImplied, 1, false, 0},
	0x14: {mnTRB, modeZeroPage, 5, false, 0},
	0x15: {mnORA, modeZeroPageX, 4, false, 0},
	0x16: {mnASL, modeZeroPageX, 6, false, 0},
	0x17: {mnRMB, modeZeroPage, 5, false, 1},
	0x18: {mnCLC, modeImplied, 2, false, 0},
	0x19: {mnORA, modeAbsoluteY, 4, true, 0},
	0x1A: {mnINC, modeAccumulator, 2, false, 0},
	0x1B: {mnNOP, modeImplied, 1, false, 0},
	0x1C: {mnTRB, modeAbsolute, 6, false, 0},
	0x1D: {mnORA, modeAbsoluteX, 4, true, 0},
	0x1E: {mnASL, modeAbsoluteX, 6, false, 0},
	0x1F: {mnBBR, modeZeroPageRelative, 5, false, 1},

	0x20: {mnJSR, modeAbsolute, 6, false, 0},
	0x21: {mnAND, modeIndexedIndirectX, 6, false, 0},
	0x22: {mnNOP, modeImmediate, 2, false, 0},
	0x23: {mnNOP, modeImplied, 1, false, 0},
	0x24: {mnBIT, modeZeroPage, 3, false, 0},
	0x25: {mnAND, modeZeroPage, 3, false, 0},
	0x26: {mnROL, modeZeroPage, 5, false, 0},
	0x27: {mnRMB, modeZeroPage, 5, false, 2},
	0x28: {mnPLP, modeImplied, 4, false, 0},
	0x29: {mnAND, modeImmediate, 2, false, 0},
	0x2A: {mnROL, modeAccumulator, 2, false, 0},
	0x2B: {mnNOP, modeImplied, 1, false, 0},
	0x2C: {mnBIT, modeAbsolute, 4, false, 0},
	0x2D: {mnAND, modeAbsolute, 4, false, 0},
	0x2E: {mnROL, modeAbsolute, 6, false, 0},
	0x2F: {mnBBR, modeZeroPageRelative, 5, false, 2},

	0x30: {mnBMI, modeRelative, 2, false, 0},
	0x31: {mnAND, modeIndirectIndexedY, 5, true, 0},
	0x32: {mnAND, modeIndirectZP, 5, false, 0},
	0x33: {mnNOP, modeImplied, 1, false, 0},
	0x34: {mnBIT, modeZeroPageX, 4, false, 0},
	0x35: {mnAND, modeZeroPageX, 4, false, 0},
	0x36: {mnROL, modeZeroPageX, 6, false, 0},
	0x37: {mnRMB, modeZeroPage, 5, false, 3},
	0x38: {mnSEC, modeImplied, 2, false, 0},
	0x39: {mnAND, modeAbsoluteY, 4, true, 0},
	0x3A: {mnDEC, modeAccumulator, 2, false, 0},
	0x3B: {mnNOP, modeImplied, 1, false, 0},
	0x3C: {mnBIT, modeAbsoluteX, 4, true, 0},
	0x3D: {mnAND, modeAbsoluteX, 4, true, 0},
	0x3E: {mnROL, modeAbsoluteX, 6, false, 0},
	0x3F: {mnBBR, modeZeroPageRelative, 5, false, 3},

	0x40: {mnRTI, modeImplied, 6, false, 0},
	0x41: {mnEOR, modeIndexedIndirectX, 6, false, 0},
	0x42: {mnNOP, modeImmediate, 2, false, 0},
	0x43: {mnNOP, modeImplied, 1, false, 0},
	0x44: {mnNOP, modeZeroPage, 3, false, 0},
	0x45: {mnEOR, modeZeroPage, 3, false, 0},
	0x46: {mnLSR, modeZeroPage, 5, false, 0},
	0x47: {mnRMB, modeZeroPage, 5, false, 4},
	0x48: {mnPHA, modeImplied, 3, false, 0},
	0x49: {mnEOR, modeImmediate, 2, false, 0},
	0x4A: {mnLSR, modeAccumulator, 2, false, 0},
	0x4B: {mnNOP, modeImplied, 1, false, 0},
	0x4C: {mnJMP, modeAbsolute, 3, false, 0},
	0x4D: {mnEOR, modeAbsolute, 4, false, 0},
	0x4E: {mnLSR, modeAbsolute, 6, false, 0},
	0x4F: {mnBBR, modeZeroPageRelative, 5, false, 4},

	0x50: {mnBVC, modeRelative, 2, false, 0},
	0x51: {mnEOR, modeIndirectIndexedY, 5, true, 0},
	0x52: {mnEOR, modeIndirectZP, 5, false, 0},
	0x53: {mnNOP, modeImplied, 1, false, 0},
	0x54: {mnNOP, modeZeroPageX, 4, false, 0},
	0x55: {mnEOR, modeZeroPageX, 4, false, 0},
	0x56: {mnLSR, modeZeroPageX, 6, false, 0},
	0x57: {mnRMB, modeZeroPage, 5, false, 5},
	0x58: {mnCLI, modeImplied, 2, false, 0},
	0x59: {mnEOR, modeAbsoluteY, 4, true, 0},
	0x5A: {mnPHY, modeImplied, 3, false, 0},
	0x5B: {mnNOP, modeImplied, 1, false, 0},
	0x5C: {mnNOP, modeAbsolute, 8, false, 0},
	0x5D: {mnEOR, modeAbsoluteX, 4, true, 0},
	0x5E: {mnLSR, modeAbsoluteX, 6, false, 0},
	0x5F: {mnBBR, modeZeroPageRelative, 5, false, 5},

	0x60: {mnRTS, modeImplied, 6, false, 0},
	0x61: {mnADC, modeIndexedIndirectX, 6, false, 0},
	0x62: {mnNOP, modeImmediate, 2, false, 0},
	0x63: {mnNOP, modeImplied, 1, false, 0},
	0x64: {mnSTZ, modeZeroPage, 3, false, 0},
	0x65: {mnADC, modeZeroPage, 3, false, 0},
	0x66: {mnROR, modeZeroPage, 5, false, 0},
	0x67: {mnRMB, modeZeroPage, 5, false, 6},
	0x68: {mnPLA, modeImplied, 4, false, 0},
	0x69: {mnADC, modeImmediate, 2, false, 0},
	0x6A: {mnROR, modeAccumulator, 2, false, 0},
	0x6B: {mnNOP, modeImplied, 1, false, 0},
	0x6C: {mnJMP, modeIndirect, 6, false, 0},
	0x6D: {mnADC, modeAbsolute, 4, false, 0},
	0x6E: {mnROR, modeAbsolute, 6, false, 0},
	0x6F: {mnBBR, modeZeroPageRelative, 5, false, 6},

	0x70: {mnBVS, modeRelative, 2, false, 0},
	0x71: {mnADC, modeIndirectIndexedY, 5, true, 0},
	0x72: {mnADC, modeIndirectZP, 5, false, 0},
	0x73: {mnNOP, modeImplied, 1, false, 0},
	0x74: {mnSTZ, modeZeroPageX, 4, false, 0},
	0x75: {mnADC, modeZeroPageX, 4, false, 0},
	0x76: {mnROR, modeZeroPageX, 6, false, 0},
	0x77: {mnRMB, modeZeroPage, 5, false, 7},
	0x78: {mnSEI, modeImplied, 2, false, 0},
	0x79: {mnADC, modeAbsoluteY, 4, true, 0},
	0x7A: {mnPLY, modeImplied, 4, false, 0},
	0x7B: {mnNOP, modeImplied, 1, false, 0},
	0x7C: {mnJMP, modeAbsoluteIndexedIndirect, 6, false, 0},
	0x7D: {mnADC, modeAbsoluteX, 4, true, 0},
	0x7E: {mnROR, modeAbsoluteX, 6, false, 0},
	0x7F: {mnBBR, modeZeroPageRelative, 5, false, 7},

	0x80: {mnBRA, modeRelative, 3, false, 0},
	0x81: {mnSTA, modeIndexedIndirectX, 6, false, 0},
	0x82: {mnNOP, modeImmediate, 2, false, 0},
	0x83: {mnNOP, modeImplied, 1, false, 0},
	0x84: {mnSTY, modeZeroPage, 3, false, 0},
	0x85: {mnSTA, modeZeroPage, 3, false, 0},
	0x86: {mnSTX, modeZeroPage, 3, false, 0},
	0x87: {mnSMB, modeZeroPage, 5, false, 0},
	0x88: {mnDEY, modeImplied, 2, false, 0},
	0x89: {mnBIT, modeImmediate, 2, false, 0},
	0x8A: {mnTXA, modeImplied, 2, false, 0},
	0x8B: {mnNOP, modeImplied, 1, false, 0},
	0x8C: {mnSTY, modeAbsolute, 4, false, 0},
	0x8D: {mnSTA, modeAbsolute, 4, false, 0},
	0x8E: {mnSTX, modeAbsolute, 4, false, 0},
	0x8F: {mnBBS, modeZeroPageRelative, 5, false, 0},

	0x90: {mnBCC, modeRelative, 2, false, 0},
	0x91: {mnSTA, modeIndirectIndexedY, 6, false, 0},
	0x92: {mnSTA, modeIndirectZP, 5, false, 0},
	0x93: {mnNOP, modeImplied, 1, false, 0},
	0x94: {mnSTY, modeZeroPageX, 4, false, 0},
	0x95: {mnSTA, modeZeroPageX, 4, false, 0},
	0x96: {mnSTX, modeZeroPageY, 4, false, 0},
	0x97: {mnSMB, modeZeroPage, 5, false, 1},
	0x98: {mnTYA, modeImplied, 2, false, 0},
	0x99: {mnSTA, modeAbsoluteY, 5, false, 0},
	0x9A: {mnTXS, modeImplied, 2, false, 0},
	0x9B: {mnNOP, modeImplied, 1, false, 0},
	0x9C: {mnSTZ, modeAbsolute, 4, false, 0},
	0x9D: {mnSTA, modeAbsoluteX, 5, false, 0},
	0x9E: {mnSTZ, modeAbsoluteX, 5, false, 0},
	0x9F: {mnBBS, modeZeroPageRelative, 5, false, 1},

	0xA0: {mnLDY, modeImmediate, 2, false, 0},
	0xA1: {mnLDA, modeIndexedIndirectX, 6, false, 0},
	0xA2: {mnLDX, modeImmediate, 2, false, 0},
	0xA3: {mnNOP, modeImplied, 1, false, 0},
	0xA4: {mnLDY, modeZeroPage, 3, false, 0},
	0xA5: {mnLDA, modeZeroPage, 3, false, 0},
	0xA6: {mnLDX, modeZeroPage, 3, false, 0},
	0xA7: {mnSMB, modeZeroPage, 5, false, 2},
	0xA8: {mnTAY, modeImplied, 2, false, 0},
	0xA9: {mnLDA, modeImmediate, 2, false, 0},
	0xAA: {mnTAX, modeImplied, 2, false, 0},
	0xAB: {mnNOP, modeImplied, 1, false, 0},
	0xAC: {mnLDY, modeAbsolute, 4, false, 0},
	0xAD: {mnLDA, modeAbsolute, 4, false, 0},
	0xAE: {mnLDX, modeAbsolute, 4, false, 0},
	0xAF: {mnBBS, modeZeroPageRelative, 5, false, 2},

	0xB0: {mnBCS, modeRelative, 2, false, 0},
	0xB1: {mnLDA, modeIndirectIndexedY, 5, true, 0},
	0xB2: {mnLDA, modeIndirectZP, 5, false, 0},
	0xB3: {mnNOP, modeImplied, 1, false, 0},
	0xB4: {mnLDY, modeZeroPageX, 4, false, 0},
	0xB5: {mnLDA, modeZeroPageX, 4, false, 0},
	0xB6: {mnLDX, modeZeroPageY, 4, false, 0},
	0xB7: {mnSMB, modeZeroPage, 5, false, 3},
	0xB8: {mnCLV, modeImplied, 2, false, 0},
	0xB9: {mnLDA, modeAbsoluteY, 4, true, 0},
	0xBA: {mnTSX, modeImplied, 2, false, 0},
	0xBB: {mnNOP, modeImplied, 1, false, 0},
	0xBC: {mnLDY, modeAbsoluteX, 4, true, 0},
	0xBD: {mnLDA, modeAbsoluteX, 4, true, 0},
	0xBE: {mnLDX, modeAbsoluteY, 4, true, 0},
	0xBF: {mnBBS, modeZeroPageRelative, 5, false, 3},

	0xC0: {mnCPY, modeImmediate, 2, false, 0},
	0xC1: {mnCMP, modeIndexedIndirectX, 6, false, 0},
	0xC2: {mnNOP, modeImmediate, 2, false, 0},
	0xC3: {mnNOP, modeImplied, 1, false, 0},
	0xC4: {mnCPY, modeZeroPage, 3, false, 0},
	0xC5: {mnCMP, modeZeroPage, 3, false, 0},
	0xC6: {mnDEC, modeZeroPage, 5, false, 0},
	0xC7: {mnSMB, modeZeroPage, 5, false, 4},
	0xC8: {mnINY, modeImplied, 2, false, 0},
	0xC9: {mnCMP, modeImmediate, 2, false, 0},
	0xCA: {mnDEX, modeImplied, 2, false, 0},
	0xCB: {mnWAI, modeImplied, 3, false, 0},
	0xCC: {mnCPY, modeAbsolute, 4, false, 0},
	0xCD: {mnCMP, modeAbsolute, 4, false, 0},
	0xCE: {mnDEC, modeAbsolute, 6, false, 0},
	0xCF: {mnBBS, modeZeroPageRelative, 5, false, 4},

	0xD0: {mnBNE, modeRelative, 2, false, 0},
	0xD1: {mnCMP, modeIndirectIndexedY, 5, true, 0},
	0xD2: {mnCMP, modeIndirectZP, 5, false, 0},
	0xD3: {mnNOP, modeImplied, 1, false, 0},
	0xD4: {mnNOP, modeZeroPageX, 4, false, 0},
	0xD5: {mnCMP, modeZeroPageX, 4, false, 0},
	0xD6: {mnDEC, modeZeroPageX, 6, false, 0},
	0xD7: {mnSMB, modeZeroPage, 5, false, 5},
	0xD8: {mnCLD, modeImplied, 2, false, 0},
	0xD9: {mnCMP, modeAbsoluteY, 4, true, 0},
	0xDA: {mnPHX, modeImplied, 3, false, 0},
	0xDB: {mnSTP, modeImplied, 3, false, 0},
	0xDC: {mnNOP, modeAbsolute, 4, false, 0},
	0xDD: {mnCMP, modeAbsoluteX, 4, true, 0},
	0xDE: {mnDEC, modeAbsoluteX, 7, false, 0},
	0xDF: {mnBBS, modeZeroPageRelative, 5, false, 5},

	0xE0: {mnCPX, modeImmediate, 2, false, 0},
	0xE1: {mnSBC, modeIndexedIndirectX, 6, false, 0},
	0xE2: {mnNOP, modeImmediate, 2, false, 0},
	0xE3: {mnNOP, modeImplied, 1, false, 0},
	0xE4: {mnCPX, modeZeroPage, 3, false, 0},
	0xE5: {mnSBC, modeZeroPage, 3, false, 0},
	0xE6: {mnINC, modeZeroPage, 5, false, 0},
	0xE7: {mnSMB, modeZeroPage, 5, false, 6},
	0xE8: {mnINX, modeImplied, 2, false, 0},
	0xE9: {mnSBC, modeImmediate, 2, false, 0},
	0xEA: {mnNOP, modeImplied, 2, false, 0},
	0xEB: {mnNOP, modeImplied, 1, false, 0},
	0xEC: {mnCPX, modeAbsolute, 4, false, 0},
	0xED: {mnSBC, modeAbsolute, 4, false, 0},
	0xEE: {mnINC, modeAbsolute, 6, false, 0},
	0xEF: {mnBBS, modeZeroPageRelative, 5, false, 6},

	0xF0: {mnBEQ, modeRelative, 2, false, 0},
	0xF1: {mnSBC, modeIndirectIndexedY, 5, true, 0},
	0xF2: {mnSBC, modeIndirectZP, 5, false, 0},
	0xF3: {mnNOP, modeImplied, 1, false, 0},
	0xF4: {mnNOP, modeZeroPageX, 4, false, 0},
	0xF5: {mnSBC, modeZeroPageX, 4, false, 0},
	0xF6: {mnINC, modeZeroPageX, 6, false, 0},
	0xF7: {mnSMB, modeZeroPage, 5, false, 7},
	0xF8: {mnSED, modeImplied, 2, false, 0},
	0xF9: {mnSBC, modeAbsoluteY, 4, true, 0},
	0xFA: {mnPLX, modeImplied, 4, false, 0},
	0xFB: {mnNOP, modeImplied, 1, false, 0},
	0xFC: {mnNOP, modeAbsolute, 4, false, 0},
	0xFD: {mnSBC, modeAbsoluteX, 4, true, 0},
	0xFE: {mnINC, modeAbsoluteX, 7, false, 0},
	0xFF: {mnBBS, modeZeroPageRelative, 5, false, 7},
}
