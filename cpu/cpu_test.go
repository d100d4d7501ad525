package cpu_test

import (
	"strings"
	"testing"

	"github.com/JAGADISH4/Nand2Tetris-software-toolchain-Project/assembler"
	"github.com/JAGADISH4/Nand2Tetris-software-toolchain-Project/cpu"
)

// Assembles source, loads it and runs to halt.
func assembleAndRun(t *testing.T, src string, setup func(*cpu.CPU)) *cpu.CPU {
	t.Helper()

	words, err := assembler.New().AssembleWords(src)
	if err != nil {
		t.Fatalf("failed to assemble:\n%s\nerror: %v", src, err)
	}

	c := cpu.New()
	c.LoadROM(words)
	if setup != nil {
		setup(c)
	}
	if err := c.Run(100000); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return c
}

func TestStepAInstruction(t *testing.T) {
	c := cpu.New()
	c.LoadROM([]uint16{21})
	if err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if c.A != 21 || c.PC != 1 || c.D != 0 {
		t.Fatalf("A=%d PC=%d D=%d after @21", c.A, c.PC, c.D)
	}
	if err := c.Step(); err != cpu.ErrHalted {
		t.Fatalf("expected ErrHalted past ROM end, got %v", err)
	}
}

func TestAddProgram(t *testing.T) {
	c := assembleAndRun(t, "@2\nD=A\n@3\nD=D+A\n@0\nM=D", nil)
	if c.RAM[0] != 5 {
		t.Fatalf("RAM[0] = %d, want 5", c.RAM[0])
	}
}

// Picks the larger of RAM[0] and RAM[1] into RAM[2], exercising
// conditional jumps both taken and not taken.
func TestMaxProgram(t *testing.T) {
	src := `
	@R0
	D=M
	@R1
	D=D-M
	@FIRST
	D;JGT
	@R1
	D=M
	@STORE
	0;JMP
(FIRST)
	@R0
	D=M
(STORE)
	@R2
	M=D
(END)
	@END
	0;JMP
`
	tests := []struct {
		name      string
		a, b, max uint16
	}{
		{"FirstLarger", 23, 7, 23},
		{"SecondLarger", 7, 23, 23},
		{"Equal", 9, 9, 9},
	}
	for _, tc := range tests {
		c := assembleAndRun(t, src, func(c *cpu.CPU) {
			c.RAM[0] = tc.a
			c.RAM[1] = tc.b
		})
		if c.RAM[2] != tc.max {
			t.Errorf("[%s] RAM[2] = %d, want %d", tc.name, c.RAM[2], tc.max)
		}
	}
}

func TestSumProgram(t *testing.T) {
	src := `
	@i
	M=1
	@sum
	M=0
(LOOP)
	@i
	D=M
	@100
	D=D-A
	@END
	D;JGT
	@i
	D=M
	@sum
	M=D+M
	@i
	M=M+1
	@LOOP
	0;JMP
(END)
	@END
	0;JMP
`
	c := assembleAndRun(t, src, nil)
	// Variables land at 16 (i) and 17 (sum).
	if c.RAM[17] != 5050 {
		t.Fatalf("RAM[17] = %d, want 5050", c.RAM[17])
	}
}

// M reads and writes use the screen and keyboard mappings like any
// other RAM word.
func TestMemoryMap(t *testing.T) {
	c := assembleAndRun(t, "@KBD\nD=M\n@SCREEN\nM=D", func(c *cpu.CPU) {
		c.SetKey(65)
	})
	if c.RAM[cpu.Screen] != 65 {
		t.Fatalf("RAM[SCREEN] = %d, want 65", c.RAM[cpu.Screen])
	}
}

// Negative ALU results wrap in two's complement and drive JLT.
func TestNegativeResults(t *testing.T) {
	c := assembleAndRun(t, "@5\nD=-A\n@NEG\nD;JLT\n@R1\nM=1\n(NEG)\n@R0\nM=D", nil)
	if c.RAM[0] != 0xFFFB {
		t.Fatalf("RAM[0] = %#x, want %#x", c.RAM[0], 0xFFFB)
	}
	if c.RAM[1] != 0 {
		t.Fatal("fall-through path ran despite taken jump")
	}
}

func TestLoadHack(t *testing.T) {
	c := cpu.New()
	if err := c.LoadHack("0000000000000111\n1110110000010000\n"); err != nil {
		t.Fatal(err)
	}
	if len(c.ROM) != 2 || c.ROM[0] != 7 {
		t.Fatalf("unexpected ROM: %v", c.ROM)
	}

	err := c.LoadHack("0000\n")
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected line error, got %v", err)
	}
}

func TestRunWithoutHalt(t *testing.T) {
	// An empty-jump loop body that never reaches a halt idiom.
	words, err := assembler.New().AssembleWords("(LOOP)\nD=D+1\n@LOOP\n0;JMP")
	if err != nil {
		t.Fatal(err)
	}
	c := cpu.New()
	c.LoadROM(words)
	if err := c.Run(1000); err == nil {
		t.Fatal("expected step-limit error")
	}
}

func TestDumpState(t *testing.T) {
	c := cpu.New()
	c.RAM[0] = 42
	var b strings.Builder
	c.DumpState(&b)
	if !strings.Contains(b.String(), "42") {
		t.Errorf("dump does not show RAM[0]:\n%s", b.String())
	}
}
