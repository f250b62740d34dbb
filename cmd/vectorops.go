package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openmusickit/tonalgo/spell"
	"github.com/openmusickit/tonalgo/vector"
)

func init() {
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(invertCmd)
}

var sumCmd = &cobra.Command{
	Use:   "sum <d,c[,o]> <d,c[,o]>",
	Short: "Adds two tonal vectors",
	Long:  `Adds two tonal vectors`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		x := parseVectorArg(args[0])
		y := parseVectorArg(args[1])
		res, err := vector.Sum(x, y)
		cobra.CheckErr(err)
		printResult(res)
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff <d,c[,o]> <d,c[,o]>",
	Short: "Subtracts one tonal vector from another",
	Long:  `Subtracts one tonal vector from another`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		x := parseVectorArg(args[0])
		y := parseVectorArg(args[1])
		res, err := vector.Diff(x, y)
		cobra.CheckErr(err)
		printResult(res)
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <d,c[,o]>",
	Short: "Normalizes a tonal vector to canonical form",
	Long:  `Normalizes a tonal vector to canonical form`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		printResult(vector.Normalize(parseVectorArg(args[0])))
	},
}

var invertCmd = &cobra.Command{
	Use:   "invert <d,c[,o]>",
	Short: "Inverts a tonal vector about the origin",
	Long:  `Inverts a tonal vector about the origin`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		printResult(vector.Invert(parseVectorArg(args[0])))
	},
}

func parseVectorArg(arg string) vector.Vector {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 && len(parts) != 3 {
		panic("Vector arg must be d,c or d,c,o: " + arg)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			panic("Bad vector component in " + arg + ": " + err.Error())
		}
		nums[i] = n
	}

	if len(nums) == 2 {
		return vector.Interval(nums[0], nums[1])
	}
	return vector.Pitch(nums[0], nums[1], nums[2])
}

func printResult(v vector.Vector) {
	fmt.Printf("%v\n", v)
	if name, err := spell.Unicode(v); err == nil {
		fmt.Printf("pitch: %v\n", name)
	}
	if name, err := spell.IntervalAbbr(v); err == nil {
		fmt.Printf("interval: %v\n", name)
	}
}
