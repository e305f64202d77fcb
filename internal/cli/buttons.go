package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"github.com/spf13/cobra"
)

// buttonAt opens the Launchpad and resolves the button at args[0], args[1]
func (a *app) buttonAt(args []string) (*launchpad.Button, error) {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid x %q: %w", args[0], err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("invalid y %q: %w", args[1], err)
	}

	lp, err := a.openLaunchpad()
	if err != nil {
		return nil, err
	}
	b, ok := lp.Button(x, y)
	if !ok {
		return nil, fmt.Errorf("no button at %d,%d", x, y)
	}
	return b, nil
}

// colorHelp describes the COLOR argument
func colorHelp(action string) string {
	return fmt.Sprintf("%s. COLOR is a palette code (0-127) or one of: %s.",
		action, strings.Join(launchpad.ColorNames(), ", "))
}

func parseChannel(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid channel value %q: expected 0-255", s)
	}
	return uint8(v), nil
}

func (a *app) newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color X Y COLOR",
		Short: "Set a static palette color",
		Long:  colorHelp("Set a static palette color"),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := launchpad.ParseColor(args[2])
			if err != nil {
				return err
			}
			b, err := a.buttonAt(args)
			if err != nil {
				return err
			}
			if err := b.SetColor(color); err != nil {
				return err
			}
			a.log.Info().Stringer("button", b).Uint8("color", color).Msg("color set")
			return nil
		},
	}
}

func (a *app) newPulseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pulse X Y COLOR",
		Short: "Pulse a palette color",
		Long:  colorHelp("Pulse a palette color on the device"),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := launchpad.ParseColor(args[2])
			if err != nil {
				return err
			}
			b, err := a.buttonAt(args)
			if err != nil {
				return err
			}
			if err := b.PulseColor(color); err != nil {
				return err
			}
			a.log.Info().Stringer("button", b).Uint8("color", color).Msg("pulsing")
			return nil
		},
	}
}

func (a *app) newRGBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rgb X Y R G B",
		Short: "Set an RGB color (channels 0-255)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rgb [3]uint8
			for i, s := range args[2:] {
				v, err := parseChannel(s)
				if err != nil {
					return err
				}
				rgb[i] = v
			}
			b, err := a.buttonAt(args)
			if err != nil {
				return err
			}
			if err := b.SetRGBColor(rgb[0], rgb[1], rgb[2]); err != nil {
				return err
			}
			a.log.Info().Stringer("button", b).Uints8("rgb", rgb[:]).Msg("rgb color set")
			return nil
		},
	}
}

func (a *app) newDarkenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "darken X Y",
		Short: "Turn a button off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.buttonAt(args)
			if err != nil {
				return err
			}
			if err := b.Darken(); err != nil {
				return err
			}
			a.log.Info().Stringer("button", b).Msg("darkened")
			return nil
		},
	}
}

func (a *app) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Turn every button off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lp, err := a.openLaunchpad()
			if err != nil {
				return err
			}
			if err := lp.Clear(); err != nil {
				return err
			}
			a.log.Info().Int("buttons", len(lp.Buttons())).Msg("cleared")
			return nil
		},
	}
}
