package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/armsim/internal/export"
	"github.com/san-kum/armsim/internal/kinematics"
	"github.com/san-kum/armsim/internal/metrics"
	"github.com/san-kum/armsim/internal/storage"
	"github.com/san-kum/armsim/internal/trace"
	"github.com/san-kum/armsim/internal/viz"
)

func newStore() *storage.Store {
	return storage.New(dataDir, storage.WithLogger(logger))
}

func recordTrace(ctx context.Context) (*trace.Result, error) {
	rec := trace.New(kinematics.DefaultLinkLengths())
	for _, m := range metrics.Standard() {
		rec.AddMetric(m)
	}
	return rec.Run(ctx, cfg.TraceConfig())
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func plotSeries(data []float64, caption string) {
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Println()
}

func runAnimate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if rows > 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tBASE\tSHOULDER\tELBOW\tX\tY\tZ")
		n := 0
		rec := trace.New(kinematics.DefaultLinkLengths())
		err := rec.RunWithCallback(ctx, cfg.TraceConfig(), func(f trace.Frame) bool {
			fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t%s\n", f.Time,
				f.Angles.Base, f.Angles.Shoulder, f.Angles.Elbow,
				viz.FormatCoord(f.Position.X), viz.FormatCoord(f.Position.Y), viz.FormatCoord(f.Position.Z))
			n++
			return n < rows
		})
		if err != nil {
			return err
		}
		return w.Flush()
	}

	result, err := recordTrace(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("animation sweep: %d frames, dt %.3fs, %.1fs\n\n", result.Len(), cfg.Record.Dt, cfg.Record.Duration)
	plotSeries(result.Series(0), "x")
	plotSeries(result.Series(1), "y")
	plotSeries(result.Series(2), "z (height)")
	fmt.Println("metrics:")
	printMetrics(result.Metrics)
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st := newStore()
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println("recording animation sweep...")
	start := time.Now()

	result, err := recordTrace(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunInfo{
		Source:      "animation",
		Dt:          cfg.Record.Dt,
		Duration:    cfg.Record.Duration,
		LinkLengths: kinematics.DefaultLinkLengths(),
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.Len())
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := newStore().List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTIME\tDURATION\tDT\tFRAMES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Source,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Frames,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, err := newStore().Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := newStore()

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	result, err := st.LoadPoses(runID)
	if err != nil {
		return err
	}
	if result.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("source: %s\n", meta.Source)
	fmt.Printf("frames: %d\n\n", result.Len())

	joints := make([][]float64, kinematics.DOF)
	for _, a := range result.Angles {
		for _, j := range kinematics.Joints {
			joints[j] = append(joints[j], a.Get(j))
		}
	}
	for _, j := range kinematics.Joints {
		plotSeries(joints[j], fmt.Sprintf("%s (deg)", j))
	}
	plotSeries(result.Series(2), "end-effector height")
	return nil
}

// trackRun draws the end-effector path as a scatter plot on one plane.
func trackRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	var axes [2]int
	var svgPlane export.Plane
	switch plane {
	case "xy":
		axes, svgPlane = [2]int{0, 1}, export.PlaneXY
	case "xz":
		axes, svgPlane = [2]int{0, 2}, export.PlaneXZ
	case "yz":
		axes, svgPlane = [2]int{1, 2}, export.PlaneYZ
	default:
		return fmt.Errorf("unknown plane %q (xy|xz|yz)", plane)
	}

	result, err := newStore().LoadPoses(runID)
	if err != nil {
		return err
	}
	if result.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	xData, yData := result.Series(axes[0]), result.Series(axes[1])
	xMin, xMax := minMax(xData)
	yMin, yMax := minMax(yData)
	xRange, yRange := xMax-xMin, yMax-yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	fmt.Printf("end-effector path: %s (%s plane)\n\n", runID, plane)

	const width, height = 70, 20
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := height - 1 - int(float64(height-1)*(yData[i]-yMin)/yRange)
		switch {
		case i < len(xData)/3:
			canvas[py][px] = '.'
		case i < 2*len(xData)/3:
			canvas[py][px] = 'o'
		default:
			canvas[py][px] = '●'
		}
	}

	fmt.Printf("  %6.2f ┌%s┐\n", yMax, repeat('─', width))
	for i := range canvas {
		if i == height/2 {
			fmt.Printf("  %6.2f │", (yMax+yMin)/2)
		} else {
			fmt.Print("         │")
		}
		fmt.Printf("%s│\n", string(canvas[i]))
	}
	fmt.Printf("  %6.2f └%s┘\n", yMin, repeat('─', width))
	fmt.Printf("         %-*.2f%.2f\n", width-4, xMin, xMax)
	fmt.Printf("\nLegend: . = early, o = middle, ● = late\n")

	if svgOut != "" {
		svg := export.PathToSVG(result.Positions, svgPlane, 600, 600, "#00ffff")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("path written to %s\n", svgOut)
	}
	return nil
}

func minMax(v []float64) (float64, float64) {
	lo, hi := v[0], v[0]
	for _, x := range v {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

func repeat(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	result, err := newStore().LoadPoses(args[0])
	if err != nil {
		return err
	}
	if result.Len() == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WritePoses(os.Stdout, result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := newStore()

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	result, err := st.LoadPoses(runID)
	if err != nil {
		return err
	}

	logger.Debug("exporting run", zap.String("id", runID), zap.Int("frames", result.Len()))
	return storage.ExportJSON(os.Stdout, meta, result)
}
