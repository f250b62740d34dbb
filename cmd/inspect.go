package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmusickit/tonalgo/midi"
	"github.com/openmusickit/tonalgo/spell"
)

var inspectFlats bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectFlats, "flats", false, "spell black keys as flats")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the pitch vectors of a MIDI file",
	Long:  `Prints the pitch vectors of a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	notes, err := midi.NotesInFile(path, inspectFlats)
	cobra.CheckErr(err)

	for _, v := range notes {
		name, err := spell.UnicodeC4(v)
		if err != nil {
			name = "?"
		}
		fmt.Printf("%v %v\n", v, name)
	}
	fmt.Printf("%v notes\n", len(notes))
}
