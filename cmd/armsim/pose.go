package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/armsim/internal/analysis"
	"github.com/san-kum/armsim/internal/config"
	"github.com/san-kum/armsim/internal/kinematics"
	"github.com/san-kum/armsim/internal/viz"
)

// poseFromFlags clamps the --base/--shoulder/--elbow values into range.
func poseFromFlags() kinematics.JointAngles {
	return kinematics.JointAngles{Base: base, Shoulder: shoulder, Elbow: elbow}.Clamp()
}

func runFK(cmd *cobra.Command, args []string) error {
	a := poseFromFlags()
	p := kinematics.ComputeEndEffectorPosition(a, kinematics.DefaultLinkLengths())

	fmt.Printf("pose: %s\n", a)
	if precise {
		fmt.Printf("X: %s  Y: %s  Z: %s\n",
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.FormatFloat(p.Z, 'g', -1, 64))
		return nil
	}
	fmt.Println(viz.FormatPosition(p))
	return nil
}

func runFrames(cmd *cobra.Command, args []string) error {
	a := poseFromFlags()
	rot := kinematics.ComputeJointFrameRotations(a)
	chain := kinematics.NewChain(kinematics.DefaultLinkLengths())
	pose := chain.Pose(rot)

	fmt.Printf("pose: %s\n\n", a)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "JOINT\tAXIS\tANGLE (rad)\tANGLE (deg)")
	for _, j := range kinematics.Joints {
		r := rot.Of(j)
		fmt.Fprintf(w, "%s\t(%.0f, %.0f, %.0f)\t%.6f\t%.2f\n", j, r.Axis[0], r.Axis[1], r.Axis[2], r.Angle, r.Degrees())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tX\tY\tZ")
	for _, f := range pose.Frames() {
		o := pose.Origin(f.Name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, viz.FormatCoord(o.X), viz.FormatCoord(o.Y), viz.FormatCoord(o.Z))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBASE\tSHOULDER\tELBOW\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%s\n", p.Name, p.Angles.Base, p.Angles.Shoulder, p.Angles.Elbow, p.Description)
	}
	return w.Flush()
}

func printParams(cmd *cobra.Command, args []string) error {
	l := kinematics.DefaultLinkLengths()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "L1\t%.1f units\tpillar height\n", l.L1)
	fmt.Fprintf(w, "L2\t%.1f units\tupper arm\n", l.L2)
	fmt.Fprintf(w, "L3\t%.1f units\tforearm\n", l.L3)
	fmt.Fprintf(w, "DOF\t%d\t\n", kinematics.DOF)
	fmt.Fprintf(w, "reach\t%.1f units\thorizontal, fully extended\n", l.MaxReach())
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "JOINT\tMIN\tMAX\tAXIS")
	axes := [kinematics.DOF]string{"yaw (z)", "pitch", "pitch"}
	for _, j := range kinematics.Joints {
		lim := kinematics.LimitOf(j)
		fmt.Fprintf(w, "%s\t%.0f°\t%.0f°\t%s\n", j, lim.Min, lim.Max, axes[j])
	}
	return w.Flush()
}

func runWorkspace(cmd *cobra.Command, args []string) error {
	ws, err := analysis.SampleWorkspace(kinematics.DefaultLinkLengths(), stepDeg)
	if err != nil {
		return err
	}

	fmt.Printf("samples: %d (step %.1f°)\n\n", ws.Len(), ws.Step)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AXIS\tMIN\tMAX")
	fmt.Fprintf(w, "x\t%.2f\t%.2f\n", ws.Bounds.Min.X, ws.Bounds.Max.X)
	fmt.Fprintf(w, "y\t%.2f\t%.2f\n", ws.Bounds.Min.Y, ws.Bounds.Max.Y)
	fmt.Fprintf(w, "z\t%.2f\t%.2f\n", ws.Bounds.Min.Z, ws.Bounds.Max.Z)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nreach: min %.2f  max %.2f  mean %.2f  stddev %.2f\n", ws.MinReach, ws.MaxReach, ws.MeanReach, ws.StdReach)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	audit, err := analysis.AuditConsistency(kinematics.DefaultLinkLengths(), stepDeg)
	if err != nil {
		return err
	}

	fmt.Printf("samples: %d\n", audit.Samples)
	fmt.Printf("max error: %.3g at %s\n", audit.MaxError, audit.Worst)
	if !audit.Passed() {
		return fmt.Errorf("frame chain disagrees with forward kinematics by %.3g (tolerance %.0e)", audit.MaxError, analysis.Tolerance)
	}
	fmt.Println("ok")
	return nil
}
