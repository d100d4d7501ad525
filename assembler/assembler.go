package assembler

import (
	"fmt"
	"strconv"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	symbols *SymbolTable
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		symbols: NewSymbolTable(),
	}
}

// Assemble translates Hack assembly source into machine code, one
// 16-character binary string per instruction, in source order. Labels
// and unrecognized lines emit nothing.
func (asm *Assembler) Assemble(src string) ([]string, error) {
	words, err := asm.AssembleWords(src)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fmt.Sprintf("%016b", w)
	}
	return out, nil
}

// AssembleWords translates Hack assembly source into raw 16-bit
// instruction words.
func (asm *Assembler) AssembleWords(src string) ([]uint16, error) {
	nodes := parse(src)

	// Pass 1: bind each label to the ROM address of the instruction
	// that follows it. Invalid lines never take a ROM address.
	rom := uint16(0)
	for _, n := range nodes {
		switch n.Type {
		case NodeLabel:
			asm.symbols.Bind(n.Symbol, rom)
		case NodeAddress, NodeCompute:
			rom++
		}
	}

	// Pass 2: resolve operands and emit. Pass 1 has already bound
	// every label, so forward references resolve here.
	var words []uint16
	for _, n := range nodes {
		switch n.Type {
		case NodeAddress:
			addr, err := asm.resolveAddress(n.Symbol)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			words = append(words, EncodeAddress(addr))
		case NodeCompute:
			w, err := EncodeCompute(n.Dest, n.Comp, n.Jump)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			words = append(words, w)
		}
	}
	return words, nil
}

// resolveAddress turns an @ operand into a numeric address. A leading
// decimal digit makes it a literal; anything else is a symbol, with
// names not bound by pass 1 allocated as variables on first use.
func (asm *Assembler) resolveAddress(operand string) (uint16, error) {
	if operand != "" && operand[0] >= '0' && operand[0] <= '9' {
		v, err := strconv.ParseUint(operand, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("bad address literal %q", operand)
		}
		return uint16(v), nil
	}
	return asm.symbols.AssignVariable(operand), nil
}
