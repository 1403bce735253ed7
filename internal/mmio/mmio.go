// Package mmio holds the ST2205U control register addresses, interrupt
// vector table, LCD command codes, and flash status constants from the
// hardware's register map. It keeps every wire-level constant in one
// place away from the logic that uses them.
package mmio

// Port group registers (0x00-0x0F, plus PL/PCL/PMCR further out).
const (
	PA  = 0x00
	PB  = 0x01
	PC  = 0x02
	PD  = 0x03
	PE  = 0x04
	PF  = 0x05
	PSC = 0x06
	PSE = 0x07
	PCA = 0x08
	PCB = 0x09
	PCC = 0x0A
	PCD = 0x0B
	PCE = 0x0C
	PCF = 0x0D
	PFC = 0x0E
	PFD = 0x0F

	PMCR = 0x3A
	PL   = 0x4E
	PCL  = 0x4F
)

// Timer registers.
const (
	T0CL = 0x20
	T0CH = 0x21
	T1CL = 0x22
	T1CH = 0x23
	T2CL = 0x24
	T2CH = 0x25
	T3CL = 0x26
	T3CH = 0x27
	TIEN = 0x28
)

// Base timer registers.
const (
	BTEN  = 0x2A
	BTREQ = 0x2B
	BTC   = 0x2C
)

// Bank registers.
const (
	IRRL = 0x30
	IRRH = 0x31
	PRRL = 0x32
	PRRH = 0x33
	DRRL = 0x34
	DRRH = 0x35
	BRRL = 0x36
	BRRH = 0x37
)

// Interrupt controller registers.
const (
	IREQL = 0x3C
	IREQH = 0x3D
	IENAL = 0x3E
	IENAH = 0x3F
)

// DMA registers.
const (
	DPTRL = 0x58
	DPTRH = 0x59
	DBKRL = 0x5A
	DBKRH = 0x5B
	DCNTL = 0x5C
	DCNTH = 0x5D
	DSEL  = 0x5E
	DMOD  = 0x5F
)

// PSG registers. Exact addresses are left to the implementer by the
// hardware documentation; these are chosen to sit in the unused control
// register range and are internally consistent across this package.
const (
	PSGC = 0x40
	PSGM = 0x41

	PSGVol0 = 0x42
	PSGVol1 = 0x43
	PSGVol2 = 0x44
	PSGVol3 = 0x45

	PSG0A = 0x46
	PSG0B = 0x47
	PSG1A = 0x48
	PSG1B = 0x49
	PSG2A = 0x4A
	PSG2B = 0x4B
	PSG3A = 0x4C
	PSG3B = 0x4D

	MULL = 0x50
	MULH = 0x51
)

// Interrupt vector addresses (CPU address space, little-endian 16-bit).
const (
	VecBRK = 0x7FFE
	VecRST = 0x7FFC
	VecINTX = 0x7FF8
	VecT0  = 0x7FF6
	VecT1  = 0x7FF4
	VecT2  = 0x7FF2
	VecT3  = 0x7FF0
	VecPT  = 0x7FEE
	VecBT  = 0x7FEC
	VecLCD = 0x7FEA
	VecSTX = 0x7FE8
	VecSRX = 0x7FE6
	VecUTX = 0x7FE4
	VecURX = 0x7FE2
	VecUSB = 0x7FE0
	VecPCM = 0x7FDC
	VecRTC = 0x7FDA
)

// Interrupt source bit positions, lowest number is highest priority.
const (
	IntINTX = 0
	IntT0   = 1
	IntT1   = 2
	IntT2   = 3
	IntT3   = 4
	IntPortA = 5
	IntBaseTimer = 6
	IntLCD  = 7
	IntSPITX = 8
	IntSPIRX = 9
	IntUARTTX = 10
	IntUARTRX = 11
	IntUSB  = 12
	// bit 13 unused
	IntPCM = 14
	IntRTC = 15
)

// VectorFor maps an interrupt source bit to its vector address.
func VectorFor(source int) uint16 {
	switch source {
	case IntINTX:
		return VecINTX
	case IntT0:
		return VecT0
	case IntT1:
		return VecT1
	case IntT2:
		return VecT2
	case IntT3:
		return VecT3
	case IntPortA:
		return VecPT
	case IntBaseTimer:
		return VecBT
	case IntLCD:
		return VecLCD
	case IntSPITX:
		return VecSTX
	case IntSPIRX:
		return VecSRX
	case IntUARTTX:
		return VecUTX
	case IntUARTRX:
		return VecURX
	case IntUSB:
		return VecUSB
	case IntPCM:
		return VecPCM
	case IntRTC:
		return VecRTC
	default:
		return VecRST
	}
}

// LCD command codes, base table (EXT=0).
const (
	LCDDisplayOn                = 0xAF
	LCDDisplayOff               = 0xAE
	LCDNormalDisplay            = 0xA6
	LCDInverseDisplay           = 0xA7
	LCDComScanDirection         = 0xBB
	LCDDisplayControl           = 0xCA
	LCDSleepInOutPreparation    = 0x04
	LCDSleepIn                  = 0x95
	LCDSleepOut                 = 0x94
	LCDPageAddressSet           = 0x75
	LCDColumnAddressSet         = 0x15
	LCDDataScanDirection        = 0xBC
	LCDWritingToMemory          = 0x5C
	LCDReadingFromMemory        = 0x5D
	LCDPartialDisplayIn         = 0xA8
	LCDPartialDisplayOut        = 0xA9
	LCDReadModifyWriteIn        = 0xE0
	LCDReadModifyWriteOut       = 0xEE
	LCDAreaScrollSet            = 0xAA
	LCDScrollStartSet           = 0xAB
	LCDInternalOscOn            = 0xD1
	LCDInternalOscOff           = 0xD2
	LCDPowerControl             = 0x20
	LCDEcControl                = 0x81
	LCDEcIncrease1              = 0xD6
	LCDEcDecrease1              = 0xD7
	LCDReadRegister1            = 0x7C
	LCDReadRegister2            = 0x7D
	LCDNoOperation              = 0x25
	LCDEepromFunctionStart      = 0x07
)

// LCD command codes, extended table (EXT=1).
const (
	LCDFrame1PwmSet                    = 0x20
	LCDFrame2PwmSet                    = 0x21
	LCDFrame3PwmSet                    = 0x22
	LCDFrame4PwmSet                    = 0x23
	LCDAnalogSet                       = 0x32
	LCDControlEeprom                   = 0xCD
	LCDCancelEeprom                    = 0xCC
	LCDWriteToEeprom                   = 0xFC
	LCDReadFromEeprom                  = 0xFD
	LCDDisplayPerformanceAdjustment    = 0xFA
	LCDInternalInitializePreparation   = 0xF4
)

// Commands valid in either EXT mode.
const (
	LCDExtOff = 0x30
	LCDExtOn  = 0x31
)

// Flash status register value (ready/pass).
const FlashStatusReady = 0xC0

// Flash geometry.
const (
	FlashSectorSize = 0x1000
	FlashBlockSize  = 0x10000
	FlashSize       = 2 * 1024 * 1024
)

// OTP and machine-address geometry.
const (
	OtpSize      = 16 * 1024
	OnChipRAMSize = 32 * 1024
	MachineResetBase = 1 << 25
)
