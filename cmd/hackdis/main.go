package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JAGADISH4/Nand2Tetris-software-toolchain-Project/disassembler"
)

var rootCmd = &cobra.Command{
	Use:   "hackdis <input.hack> [output.asm]",
	Short: "Disassemble Hack machine code back into assembly",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		code, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		text, err := disassembler.Disassemble(string(code))
		if err != nil {
			return err
		}

		if len(args) < 2 {
			fmt.Print(text)
			return nil
		}
		if err := os.WriteFile(args[1], []byte(text), 0644); err != nil {
			return err
		}
		fmt.Printf("Disassembly written to %s\n", args[1])
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
