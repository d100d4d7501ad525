package cpu

import (
	"fmt"
	"io"
)

// DumpState writes the registers and the first sixteen words of RAM
// to w.
func (c *CPU) DumpState(w io.Writer) {
	fmt.Fprintf(w, "A=%d D=%d PC=%d cycles=%d\n", c.A, c.D, c.PC, c.Cycles)
	for i := 0; i < 16; i += 8 {
		for j := i; j < i+8; j++ {
			fmt.Fprintf(w, "RAM[%2d]=%-6d ", j, c.RAM[j])
		}
		fmt.Fprintln(w)
	}
}
