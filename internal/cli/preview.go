package cli

import (
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"github.com/PixPMusic/gopher-launchpad/internal/preview"
	"github.com/spf13/cobra"
)

func (a *app) newPreviewCmd() *cobra.Command {
	var step time.Duration

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open an on-screen Launchpad and play a demo on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fyneApp := fyneapp.NewWithID("com.pixpmusic.gopherlaunchpad")
			emu := preview.NewEmulator(fyneApp, a.log)
			lp := launchpad.New(emu.SendMIDI, launchpad.WithLogger(a.log))

			go func() {
				if err := runDemo(lp, step); err != nil {
					a.log.Error().Err(err).Msg("demo failed")
				}
			}()

			emu.Window().ShowAndRun()
			return nil
		},
	}
	cmd.Flags().DurationVar(&step, "step", 15*time.Millisecond, "delay between demo messages")
	return cmd
}

// runDemo exercises every button operation on lp
func runDemo(lp *launchpad.Launchpad, step time.Duration) error {
	if err := lp.Clear(); err != nil {
		return err
	}

	for _, b := range lp.Buttons() {
		var err error
		switch {
		case b.Y() == 9:
			err = b.PulseColor(launchpad.ColorYellow)
		case b.X() == 9:
			// Scene column fades from blue to red
			level := uint8((b.Y() - 1) * 255 / 7)
			err = b.SetRGBColor(level, 0, 255-level)
		default:
			// Palette hues sweep across the 8x8 grid
			err = b.SetColor(uint8(4 + ((b.X()+b.Y())%15)*4 + 1))
		}
		if err != nil {
			return err
		}
		time.Sleep(step)
	}

	if corner, ok := lp.Button(1, 1); ok {
		return corner.Darken()
	}
	return nil
}
