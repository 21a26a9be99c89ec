package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nebolax/chatbench/internal/bench"
)

var parseCmd = &cobra.Command{
	Use:   "parse <record>",
	Short: "Parse a flat configuration record and print its details",
	Long: `Parse a seven-field flat record back into a configuration and print it.

The record is the comma-separated form emitted by 'chatbench matrix
--format csv' (without the summary statistics columns). Fields may also
be given as separate arguments.

Example usage:
  chatbench parse 8,10000,0.2,BUFFERED_16,40,USER_WITH_FRIENDS,FORK_JOIN
  chatbench parse 8 10000 0.2 BUFFERED_16 40 USER_WITH_FRIENDS FORK_JOIN`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	fields := args
	if len(args) == 1 {
		fields = strings.Split(args[0], ",")
	}

	c, err := bench.ParseRecord(fields)
	if err != nil {
		return err
	}

	fmt.Println(c.String())
	return nil
}
