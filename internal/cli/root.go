package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PixPMusic/gopher-launchpad/internal/config"
	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"github.com/PixPMusic/gopher-launchpad/internal/midi"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Ports is the MIDI port access the commands need
type Ports interface {
	ListOutPorts() []string
	OpenOut(name string) (func(gomidi.Message) error, error)
}

type app struct {
	configPath string
	port       string
	device     string
	logLevel   string

	cfg   *config.Config
	log   zerolog.Logger
	ports Ports
	out   io.Writer
}

// Execute runs the command line against the system MIDI driver
func Execute() error {
	manager := midi.NewManager()
	defer manager.Close()

	return NewRootCmd(manager, os.Stdout, os.Stderr).Execute()
}

// NewRootCmd builds the command tree. Output goes to out, logs to logOut.
func NewRootCmd(ports Ports, out, logOut io.Writer) *cobra.Command {
	a := &app{ports: ports, out: out}

	cmd := &cobra.Command{
		Use:           "gopher-launchpad",
		Short:         "Drive Launchpad pads over MIDI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, logOut)
		},
	}
	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is the user config dir)")
	flags.StringVar(&a.port, "port", "", "MIDI output port name")
	flags.StringVar(&a.device, "device", "", "saved device name or ID")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.newPortsCmd(),
		a.newDevicesCmd(),
		a.newColorCmd(),
		a.newPulseCmd(),
		a.newRGBCmd(),
		a.newDarkenCmd(),
		a.newClearCmd(),
		a.newPreviewCmd(),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command, logOut io.Writer) error {
	if a.configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		a.configPath = path
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	levelName := cfg.LogLevel
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	a.log = zerolog.New(zerolog.ConsoleWriter{Out: logOut, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("command", cmd.Name()).
		Logger()
	return nil
}

// target resolves the output port and SysEx header to use.
// Precedence: --port, --device, then the configured default device.
func (a *app) target() (string, []byte, error) {
	if a.port != "" {
		return a.port, nil, nil
	}

	name := a.device
	if name == "" {
		name = a.cfg.DefaultDevice
	}
	if name == "" {
		return "", nil, fmt.Errorf("no output selected: use --port or --device, or set a default device")
	}

	dev := a.cfg.FindDevice(name)
	if dev == nil {
		return "", nil, fmt.Errorf("device not found: %s", name)
	}
	header, err := dev.HeaderBytes()
	if err != nil {
		return "", nil, err
	}
	return dev.OutPort, header, nil
}

func (a *app) openLaunchpad() (*launchpad.Launchpad, error) {
	port, header, err := a.target()
	if err != nil {
		return nil, err
	}

	send, err := a.ports.OpenOut(port)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("port", port).Msg("opened output port")

	return launchpad.New(send,
		launchpad.WithLogger(a.log),
		launchpad.WithHeader(header),
	), nil
}
