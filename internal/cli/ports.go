package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List MIDI output ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ports := a.ports.ListOutPorts()
			if len(ports) == 0 {
				a.log.Warn().Msg("no MIDI output ports found")
				return nil
			}
			for i, name := range ports {
				fmt.Fprintf(a.out, "%d\t%s\n", i, name)
			}
			return nil
		},
	}
}
