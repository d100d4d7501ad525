package cpu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Memory map.
const (
	// RAMSize is the number of addressable data words.
	RAMSize = 32768
	// Screen is the base address of the memory-mapped display.
	Screen = 16384
	// Keyboard is the memory-mapped keyboard register.
	Keyboard = 24576
)

// ErrHalted is returned by Step when the program counter has run past
// the end of the loaded program.
var ErrHalted = errors.New("cpu: halted")

// CPU is a Hack machine: an address register, a data register, a
// program counter, and word-addressed instruction and data memories.
type CPU struct {
	// A is the address register.
	A uint16
	// D is the data register.
	D uint16
	// PC is the program counter.
	PC uint16

	// RAM is the data memory, with the screen mapped at Screen and
	// the keyboard register at Keyboard.
	RAM []uint16
	// ROM holds the loaded program.
	ROM []uint16

	// Cycles counts executed instructions.
	Cycles int64
}

// New creates a machine with zeroed registers and full-size RAM.
func New() *CPU {
	return &CPU{
		RAM: make([]uint16, RAMSize),
	}
}

// LoadROM installs a program and resets the program counter.
func (c *CPU) LoadROM(words []uint16) {
	c.ROM = append(c.ROM[:0], words...)
	c.PC = 0
}

// LoadHack parses .hack text, one 16-character binary instruction per
// line, and installs it as the program.
func (c *CPU) LoadHack(text string) error {
	var words []uint16
	for i, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 2, 16)
		if err != nil || len(line) != 16 {
			return fmt.Errorf("line %d: %q is not a 16-bit instruction", i+1, line)
		}
		words = append(words, uint16(v))
	}
	c.LoadROM(words)
	return nil
}

// Step fetches and executes a single instruction.
func (c *CPU) Step() error {
	if int(c.PC) >= len(c.ROM) {
		return ErrHalted
	}
	word := c.ROM[c.PC]
	c.Cycles++

	// A-instruction: load the address register.
	if word&(1<<15) == 0 {
		c.A = word
		c.PC++
		return nil
	}

	// C-instruction. M reads, M writes and jump targets all use the
	// value A held when the instruction started.
	addr := c.A
	y := c.A
	if word&(1<<12) != 0 {
		y = c.RAM[addr]
	}
	out := alu(c.D, y, word>>6&0b111111)

	if word&(1<<3) != 0 {
		c.RAM[addr] = out
	}
	if word&(1<<4) != 0 {
		c.D = out
	}
	if word&(1<<5) != 0 {
		c.A = out
	}

	neg := out&(1<<15) != 0
	jump := word&(1<<2) != 0 && neg ||
		word&(1<<1) != 0 && out == 0 ||
		word&1 != 0 && !neg && out != 0
	if jump {
		c.PC = addr
	} else {
		c.PC++
	}
	return nil
}

// Run executes instructions until the program runs off the end of
// ROM or reaches the usual Hack halting idiom, an @addr / 0;JMP pair
// jumping to its own address. It fails if no halt happens within
// maxSteps instructions.
func (c *CPU) Run(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		if c.idle() {
			return nil
		}
		prev := c.PC
		if err := c.Step(); err != nil {
			if errors.Is(err, ErrHalted) {
				return nil
			}
			return err
		}
		if c.PC == prev {
			return nil
		}
	}
	return fmt.Errorf("cpu: no halt within %d steps", maxSteps)
}

// idle reports whether PC sits on an A-instruction loading its own
// address, followed by an undestined unconditional jump. The pair
// loops forever without side effects.
func (c *CPU) idle() bool {
	pc := int(c.PC)
	if pc+1 >= len(c.ROM) {
		return false
	}
	a, jmp := c.ROM[pc], c.ROM[pc+1]
	return a == c.PC && jmp>>13 == 0b111 && jmp&0b111111 == 0b000111
}

// SetKey stores a key code in the keyboard register.
func (c *CPU) SetKey(key uint16) {
	c.RAM[Keyboard] = key
}

// alu implements the Hack ALU. bits are the six control bits zx, nx,
// zy, ny, f, no, most significant first.
func alu(x, y uint16, bits uint16) uint16 {
	if bits&0b100000 != 0 {
		x = 0
	}
	if bits&0b010000 != 0 {
		x = ^x
	}
	if bits&0b001000 != 0 {
		y = 0
	}
	if bits&0b000100 != 0 {
		y = ^y
	}
	var out uint16
	if bits&0b000010 != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if bits&0b000001 != 0 {
		out = ^out
	}
	return out
}
