package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/armsim/internal/automation"
	"github.com/san-kum/armsim/internal/config"
	"github.com/san-kum/armsim/internal/control"
	"github.com/san-kum/armsim/internal/export"
	"github.com/san-kum/armsim/internal/gui"
	"github.com/san-kum/armsim/internal/kinematics"
	"github.com/san-kum/armsim/internal/viz"
)

const (
	snapshotWidth  = 80
	snapshotHeight = 32
	snapshotScale  = 4.0
)

func newController() (*control.Controller, error) {
	pose, err := cfg.InitialPose()
	if err != nil {
		return nil, err
	}
	return control.New(control.WithAngles(pose), control.WithLogger(logger)), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctrl, err := newController()
	if err != nil {
		return err
	}
	return viz.Run(ctrl, viz.Options{
		Theme:       cfg.Theme,
		FPS:         cfg.FPS,
		Step:        cfg.StepDegrees,
		CoarseStep:  cfg.CoarseStepDegrees,
		Preset:      cfg.Preset,
		SnapshotDir: ".",
		Logger:      logger,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	ctrl, err := newController()
	if err != nil {
		return err
	}
	gui.Run(ctrl, gui.Options{
		FPS:        cfg.FPS,
		Step:       cfg.StepDegrees,
		CoarseStep: cfg.CoarseStepDegrees,
		Preset:     cfg.Preset,
		Logger:     logger,
	})
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	script, err := automation.LoadScript(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctrl, err := newController()
	if err != nil {
		return err
	}

	if script.Name != "" {
		fmt.Printf("script: %s\n", script.Name)
	}
	if script.Description != "" {
		fmt.Printf("%s\n", script.Description)
	}
	fmt.Println()

	outcomes, runErr := automation.Run(ctx, script, ctrl, logger)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tBASE\tSHOULDER\tELBOW\tPOSITION\tANIM")
	for _, o := range outcomes {
		a := o.Update.Angles
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%.2f\t%s\t%v\n",
			o.Number, o.Op, a.Base, a.Shoulder, a.Elbow,
			viz.FormatPosition(o.Update.Position), o.Update.Animated)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

// runSnapshot renders one pose through the TUI's braille renderer and writes
// it as SVG, without opening a terminal UI.
func runSnapshot(cmd *cobra.Command, args []string) error {
	pose := poseFromFlags()
	if cfg.Preset != "" {
		p := config.GetPreset(cfg.Preset)
		if p == nil {
			return fmt.Errorf("unknown preset %q (available: %v)", cfg.Preset, config.ListPresets())
		}
		pose = p.Angles
	}

	chain := kinematics.NewChain(kinematics.DefaultLinkLengths())
	canvas := viz.NewCanvas(snapshotWidth, snapshotHeight)
	cam := viz.NewCamera()

	scene := viz.GroundWireframe(1.5, 6)
	scene.Merge(viz.ArmWireframe(chain.Segments(chain.PoseAngles(pose))))
	viz.Render3D(canvas, scene, cam)

	th := viz.GetTheme(cfg.Theme)
	svg := export.CanvasToSVG(canvas, snapshotScale, string(th.Primary))
	if err := os.WriteFile(args[0], []byte(svg), 0644); err != nil {
		return err
	}

	logger.Debug("snapshot written", zap.String("path", args[0]), zap.Stringer("pose", pose))
	fmt.Printf("%s: %s\n", args[0], pose)
	return nil
}
