package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/vizexec/render"
)

var classifyHTML bool

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify a visualization artifact without submitting anything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, _, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		inst, ok := render.Render(artifact)
		if !ok {
			return errors.New("artifact is empty")
		}
		if classifyHTML {
			return render.WriteHTML(cmd.OutOrStdout(), inst)
		}
		fmt.Fprintln(cmd.OutOrStdout(), inst.Kind)
		return nil
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyHTML, "html", false, "Print the HTML fragment instead of the kind")
}
