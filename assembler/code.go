package assembler

import "fmt"

// C-instruction word layout: 111 accccccdddjjj. The a bit and the six
// ALU control bits together form the seven comp bits.
const (
	cPrefix   = uint16(0b111) << 13
	compShift = 6
	destShift = 3
)

//
// Mnemonic bitfield tables
//

// destBits maps destination mnemonics to their 3-bit field. The empty
// mnemonic is in-domain and encodes as no destination.
var destBits = map[string]uint16{
	"":    0b000,
	"M":   0b001,
	"D":   0b010,
	"MD":  0b011,
	"A":   0b100,
	"AM":  0b101,
	"AD":  0b110,
	"AMD": 0b111,
}

// compBits maps computation mnemonics to their 7-bit field.
var compBits = map[string]uint16{
	"0":   0b0101010,
	"1":   0b0111111,
	"-1":  0b0111010,
	"D":   0b0001100,
	"A":   0b0110000,
	"M":   0b1110000,
	"!D":  0b0001101,
	"!A":  0b0110001,
	"!M":  0b1110001,
	"-D":  0b0001111,
	"-A":  0b0110011,
	"-M":  0b1110011,
	"D+1": 0b0011111,
	"A+1": 0b0110111,
	"M+1": 0b1110111,
	"D-1": 0b0001110,
	"A-1": 0b0110010,
	"M-1": 0b1110010,
	"D+A": 0b0000010,
	"D+M": 0b1000010,
	"D-A": 0b0010011,
	"D-M": 0b1010011,
	"A-D": 0b0000111,
	"M-D": 0b1000111,
	"D&A": 0b0000000,
	"D&M": 0b1000000,
	"D|A": 0b0010101,
	"D|M": 0b1010101,
}

// jumpBits maps jump mnemonics to their 3-bit field. The empty
// mnemonic is in-domain and encodes as never jump.
var jumpBits = map[string]uint16{
	"":    0b000,
	"JGT": 0b001,
	"JEQ": 0b010,
	"JGE": 0b011,
	"JLT": 0b100,
	"JNE": 0b101,
	"JLE": 0b110,
	"JMP": 0b111,
}

// Reverse tables for decoding, built from the forward tables.
var (
	destNames = invert(destBits)
	compNames = invert(compBits)
	jumpNames = invert(jumpBits)
)

func invert(m map[string]uint16) map[uint16]string {
	out := make(map[uint16]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// EncodeAddress builds the word for an @ instruction. The address is
// truncated to 15 bits.
func EncodeAddress(addr uint16) uint16 {
	return addr &^ (1 << 15)
}

// EncodeCompute builds the word for a dest=comp;jump instruction. A
// mnemonic outside the instruction set is an error; there is no
// fallback encoding.
func EncodeCompute(dest, comp, jump string) (uint16, error) {
	d, ok := destBits[dest]
	if !ok {
		return 0, fmt.Errorf("unknown destination mnemonic %q", dest)
	}
	c, ok := compBits[comp]
	if !ok {
		return 0, fmt.Errorf("unknown computation mnemonic %q", comp)
	}
	j, ok := jumpBits[jump]
	if !ok {
		return 0, fmt.Errorf("unknown jump mnemonic %q", jump)
	}
	return cPrefix | c<<compShift | d<<destShift | j, nil
}

// DecodeCompute recovers the dest, comp and jump mnemonics from a
// C-instruction word. It is the inverse of EncodeCompute over the
// defined mnemonic set; only the comp field can be out of domain,
// since every 3-bit dest and jump value has a mnemonic.
func DecodeCompute(word uint16) (dest, comp, jump string, err error) {
	comp, ok := compNames[word>>compShift&0x7f]
	if !ok {
		return "", "", "", fmt.Errorf("no computation with code %07b", word>>compShift&0x7f)
	}
	dest = destNames[word>>destShift&0b111]
	jump = jumpNames[word&0b111]
	return dest, comp, jump, nil
}
