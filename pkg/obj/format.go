// Package obj defines the cross-format data model and capability contracts
// that every object-file backend (ELF, Mach-O, PE/COFF, Wasm) implements.
// Nothing in this package parses bytes; it only names the shapes the
// backends produce and the unified façade consumes.
package obj

// Format identifies the container a File was parsed from, along with its
// bitness. It is immutable once a File has been parsed.
type Format int

const (
	FormatUnknown Format = iota
	FormatElf32
	FormatElf64
	FormatMachO32
	FormatMachO64
	FormatPe32
	FormatPe64
	FormatWasm
)

func (f Format) String() string {
	switch f {
	case FormatElf32:
		return "Elf32"
	case FormatElf64:
		return "Elf64"
	case FormatMachO32:
		return "MachO32"
	case FormatMachO64:
		return "MachO64"
	case FormatPe32:
		return "Pe32"
	case FormatPe64:
		return "Pe64"
	case FormatWasm:
		return "Wasm"
	default:
		return "Unknown"
	}
}

// Machine identifies the target CPU a File was built for. Backends map
// their own header field onto one of these; anything not recognized
// collapses to MachineOther rather than failing the parse.
type Machine int

const (
	MachineOther Machine = iota
	MachineArm
	MachineArm64
	MachineX86
	MachineX86_64
	MachineMips
)

func (m Machine) String() string {
	switch m {
	case MachineArm:
		return "Arm"
	case MachineArm64:
		return "Arm64"
	case MachineX86:
		return "X86"
	case MachineX86_64:
		return "X86_64"
	case MachineMips:
		return "Mips"
	default:
		return "Other"
	}
}
