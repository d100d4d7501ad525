package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JAGADISH4/Nand2Tetris-software-toolchain-Project/cpu"
)

const maxSteps = 10_000_000

var rootCmd = &cobra.Command{
	Use:   "hackrun <input.hack>",
	Short: "Run Hack machine code on an emulated machine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		code, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		c := cpu.New()
		if err := c.LoadHack(string(code)); err != nil {
			return err
		}
		fmt.Printf("Loaded %d instructions\n", len(c.ROM))

		if err := c.Run(maxSteps); err != nil {
			return err
		}
		c.DumpState(os.Stdout)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
