package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/office-converter/internal/convert"
	"github.com/ytget/office-converter/internal/model"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the supported conversion modes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Listing needs no LibreOffice; the binary is only resolved to convert
		registry := convert.NewOfficeRegistry(convert.NewOffice(""))
		return printModes(cmd.OutOrStdout(), registry.Modes())
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}

// printModes writes one line per mode: id, label, input and output extension
func printModes(w io.Writer, modes []model.ConversionMode) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tLABEL\tINPUT\tOUTPUT")
	for _, mode := range modes {
		fmt.Fprintf(tw, "%s\t%s\t.%s\t.%s\n", mode, mode.Label(), mode.RequiredExtension(), mode.TargetExtension())
	}
	return tw.Flush()
}
