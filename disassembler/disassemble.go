package disassembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JAGADISH4/Nand2Tetris-software-toolchain-Project/assembler"
)

// Disassemble takes .hack machine code text, one 16-character binary
// instruction per line, and returns it as assembly language. Blank
// lines are skipped; anything else that is not a valid instruction is
// an error.
func Disassemble(text string) (string, error) {
	var result strings.Builder
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		word, err := ParseInstruction(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		op, err := Instruction(word)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		result.WriteString(op)
		result.WriteByte('\n')
	}
	return result.String(), nil
}

// ParseInstruction converts one 16-character '0'/'1' line into an
// instruction word.
func ParseInstruction(line string) (uint16, error) {
	if len(line) != 16 {
		return 0, fmt.Errorf("instruction %q is %d characters, want 16", line, len(line))
	}
	v, err := strconv.ParseUint(line, 2, 16)
	if err != nil {
		return 0, fmt.Errorf("instruction %q is not binary", line)
	}
	return uint16(v), nil
}

// Instruction renders one machine word as assembly text. Words with
// the high bit clear are @ instructions; valid compute instructions
// carry the 111 prefix.
func Instruction(word uint16) (string, error) {
	if word&(1<<15) == 0 {
		return "@" + strconv.Itoa(int(word)), nil
	}
	if word>>13 != 0b111 {
		return "", fmt.Errorf("%016b is not a Hack instruction", word)
	}
	dest, comp, jump, err := assembler.DecodeCompute(word)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if dest != "" {
		b.WriteString(dest)
		b.WriteByte('=')
	}
	b.WriteString(comp)
	if jump != "" {
		b.WriteByte(';')
		b.WriteString(jump)
	}
	return b.String(), nil
}
