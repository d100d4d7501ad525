package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JAGADISH4/Nand2Tetris-software-toolchain-Project/assembler"
)

var rootCmd = &cobra.Command{
	Use:   "hackasm <input.asm> <output.hack>",
	Short: "Assemble Hack assembly into binary machine code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		asm := assembler.New()
		lines, err := asm.Assemble(string(data))
		if err != nil {
			return err
		}

		var out strings.Builder
		for _, line := range lines {
			out.WriteString(line)
			out.WriteByte('\n')
		}
		return os.WriteFile(args[1], []byte(out.String()), 0644)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
