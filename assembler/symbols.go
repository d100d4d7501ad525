package assembler

import "strconv"

const (
	// ScreenBase is the first word of the memory-mapped screen.
	ScreenBase = 16384
	// KeyboardAddr is the memory-mapped keyboard register.
	KeyboardAddr = 24576
	// firstVariable is the data address handed to the first user variable.
	firstVariable = 16
)

// SymbolTable maps symbol names to memory or ROM addresses. It starts
// out holding the predefined Hack symbols and only ever grows: labels
// are bound during the first pass, variables are allocated during the
// second.
type SymbolTable struct {
	table   map[string]uint16
	nextVar uint16
}

// NewSymbolTable creates a table seeded with the predefined symbols:
// R0-R15, SP, LCL, ARG, THIS, THAT, SCREEN and KBD.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		table: map[string]uint16{
			"SP":     0,
			"LCL":    1,
			"ARG":    2,
			"THIS":   3,
			"THAT":   4,
			"SCREEN": ScreenBase,
			"KBD":    KeyboardAddr,
		},
		nextVar: firstVariable,
	}
	for i := 0; i < 16; i++ {
		st.table["R"+strconv.Itoa(i)] = uint16(i)
	}
	return st
}

// Contains reports whether name has a binding of any kind.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.table[name]
	return ok
}

// Resolve returns the address bound to name.
func (st *SymbolTable) Resolve(name string) (uint16, bool) {
	addr, ok := st.table[name]
	return addr, ok
}

// Bind sets name to addr, overwriting any existing binding. The first
// pass uses this for labels; redeclaring a label is not diagnosed and
// the last binding wins.
func (st *SymbolTable) Bind(name string, addr uint16) {
	st.table[name] = addr
}

// AssignVariable returns the binding for name, allocating the next
// free variable address when none exists. Variables start at 16 and
// each new name takes the following address.
func (st *SymbolTable) AssignVariable(name string) uint16 {
	if addr, ok := st.table[name]; ok {
		return addr
	}
	addr := st.nextVar
	st.table[name] = addr
	st.nextVar++
	return addr
}
