package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/armsim/internal/config"
	"github.com/san-kum/armsim/internal/logging"
)

var (
	dataDir    string
	configFile string
	logLevel   string

	// pose flags
	base     float64
	shoulder float64
	elbow    float64
	precise  bool

	// trace flags
	dt       float64
	duration float64
	rows     int

	// viewer flags
	theme     string
	frameRate int
	preset    string

	// analysis flags
	stepDeg float64

	// track flags
	plane  string
	svgOut string

	cfg    *config.Config
	logger *zap.Logger
)

// main wires the armsim commands. With no subcommand it opens the TUI.
func main() {
	rootCmd := &cobra.Command{
		Use:           "armsim",
		Short:         "3-DOF robot arm kinematics viewer",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				logger.Debug("command finished", zap.String("name", cmd.Name()))
				_ = logger.Sync()
			}
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".armsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")
	addViewerFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal viewer",
		RunE:  runTUI,
	}
	addViewerFlags(tuiCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "3D window viewer",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	guiCmd.Flags().StringVar(&preset, "preset", "", "start from a named pose")

	fkCmd := &cobra.Command{
		Use:   "fk",
		Short: "end-effector position for a pose",
		RunE:  runFK,
	}
	addPoseFlags(fkCmd)
	fkCmd.Flags().BoolVar(&precise, "precise", false, "print full precision")

	framesCmd := &cobra.Command{
		Use:   "frames",
		Short: "joint frame rotations and world origins for a pose",
		RunE:  runFrames,
	}
	addPoseFlags(framesCmd)

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "print the animation sweep",
		RunE:  runAnimate,
	}
	addTraceFlags(animateCmd)
	animateCmd.Flags().IntVar(&rows, "rows", 0, "print this many frames as a table instead of graphs")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "record the animation sweep to the data directory",
		RunE:  runRecord,
	}
	addTraceFlags(recordCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot joint angles and position of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	trackCmd := &cobra.Command{
		Use:   "track [run_id]",
		Short: "end-effector path scatter plot",
		Args:  cobra.ExactArgs(1),
		RunE:  trackRun,
	}
	trackCmd.Flags().StringVar(&plane, "plane", "xy", "projection plane (xy|xz|yz)")
	trackCmd.Flags().StringVar(&svgOut, "svg", "", "also write the path to this SVG file")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run poses to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named poses",
		RunE:  listPresets,
	}

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "print robot parameters",
		RunE:  printParams,
	}

	workspaceCmd := &cobra.Command{
		Use:   "workspace",
		Short: "sample the reachable workspace",
		RunE:  runWorkspace,
	}
	workspaceCmd.Flags().Float64Var(&stepDeg, "step", 10, "grid step in degrees")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "check forward kinematics against the frame chain",
		RunE:  runVerify,
	}
	verifyCmd.Flags().Float64Var(&stepDeg, "step", 5, "grid step in degrees")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "replay a YAML script of controller operations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file.svg]",
		Short: "render a pose to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	addPoseFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&preset, "preset", "", "render a named pose")
	snapshotCmd.Flags().StringVar(&theme, "theme", "", "colour theme")

	rootCmd.AddCommand(tuiCmd, guiCmd, fkCmd, framesCmd, animateCmd, recordCmd, listCmd, showCmd, plotCmd,
		trackCmd, exportCSVCmd, exportJSONCmd, presetsCmd, paramsCmd, workspaceCmd, verifyCmd, scriptCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addViewerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&theme, "theme", "", "colour theme")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named pose")
}

func addPoseFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&base, "base", 0, "base yaw in degrees")
	cmd.Flags().Float64Var(&shoulder, "shoulder", 30, "shoulder pitch in degrees")
	cmd.Flags().Float64Var(&elbow, "elbow", -45, "elbow pitch in degrees")
}

func addTraceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "sampling interval in seconds")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in seconds")
}

// setup loads the config file, applies flag overrides and builds the
// logger. Flags always win over the file.
func setup(cmd *cobra.Command) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Lookup("preset") != nil && flags.Changed("preset") {
		cfg.Preset = preset
	}
	if flags.Lookup("dt") != nil && flags.Changed("dt") {
		cfg.Record.Dt = dt
	}
	if flags.Lookup("time") != nil && flags.Changed("time") {
		cfg.Record.Duration = duration
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("command", zap.String("name", cmd.Name()), zap.Strings("args", os.Args[1:]))
	return nil
}
