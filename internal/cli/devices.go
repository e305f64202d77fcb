package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/PixPMusic/gopher-launchpad/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) newDevicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Manage saved Launchpad profiles",
	}
	cmd.AddCommand(a.newDevicesListCmd(), a.newDevicesAddCmd(), a.newDevicesRemoveCmd())
	return cmd
}

func (a *app) newDevicesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPORT\tHEADER\tID")
			for _, d := range a.cfg.Devices {
				name := d.Name
				if name == a.cfg.DefaultDevice || d.ID == a.cfg.DefaultDevice {
					name += " *"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, d.OutPort, d.Header, d.ID)
			}
			return w.Flush()
		},
	}
}

func (a *app) newDevicesAddCmd() *cobra.Command {
	var (
		header     string
		setDefault bool
	)

	cmd := &cobra.Command{
		Use:   "add NAME PORT",
		Short: "Save a device profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.FindDevice(args[0]) != nil {
				return fmt.Errorf("device already exists: %s", args[0])
			}

			dev := config.NewDeviceConfig(args[0], args[1])
			dev.Header = header
			if _, err := dev.HeaderBytes(); err != nil {
				return err
			}

			a.cfg.AddDevice(dev)
			if setDefault || len(a.cfg.Devices) == 1 {
				a.cfg.DefaultDevice = dev.Name
			}
			if err := a.cfg.Save(a.configPath); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			a.log.Info().Str("name", dev.Name).Str("id", dev.ID).Msg("device added")
			return nil
		},
	}
	cmd.Flags().StringVar(&header, "header", "", "SysEx header as hex (default Launchpad MK2)")
	cmd.Flags().BoolVar(&setDefault, "default", false, "make this the default device")
	return cmd
}

func (a *app) newDevicesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME|ID",
		Short: "Delete a device profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.RemoveDevice(args[0]) {
				return fmt.Errorf("device not found: %s", args[0])
			}
			if err := a.cfg.Save(a.configPath); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			a.log.Info().Str("device", args[0]).Msg("device removed")
			return nil
		},
	}
}
