package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tonalgo",
	Short: "Tonal vector algebra",
	Long:  `Arithmetic over (diatonic, chromatic[, octave]) pitch vectors.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
