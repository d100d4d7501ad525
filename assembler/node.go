package assembler

// NodeType defines the type of an assembly node.
type NodeType int

const (
	// NodeAddress is an @value instruction.
	NodeAddress NodeType = iota
	// NodeCompute is a dest=comp;jump instruction.
	NodeCompute
	// NodeLabel is a (SYMBOL) declaration.
	NodeLabel
	// NodeInvalid is a line matching no instruction shape.
	NodeInvalid
)

// Node represents one classified line from the assembly source.
type Node struct {
	Type NodeType
	// Symbol holds the operand of an address instruction or the name
	// of a label.
	Symbol string
	// Dest, Comp and Jump are the mnemonic fields of a compute
	// instruction. Dest and Jump may be empty.
	Dest string
	Comp string
	Jump string
	// Line is the 1-based source line the node came from.
	Line int
}
