// Package storage keeps recorded pose traces on disk, one directory per run
// holding metadata.json and poses.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/geo/r3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/san-kum/armsim/internal/kinematics"
	"github.com/san-kum/armsim/internal/trace"
)

const (
	metadataFile = "metadata.json"
	posesFile    = "poses.csv"
	idPrefix     = "anim"
)

var (
	ErrRunNotFound     = errors.New("storage: run not found")
	ErrMalformedResult = errors.New("storage: trace columns differ in length")
)

// PoseHeader is the poses.csv column layout.
var PoseHeader = []string{"time", "base", "shoulder", "elbow", "x", "y", "z"}

type Store struct {
	baseDir string
	logger  *zap.Logger
	clock   clock.Clock
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option { return func(s *Store) { s.logger = l } }
func WithClock(c clock.Clock) Option  { return func(s *Store) { s.clock = c } }

func New(baseDir string, opts ...Option) *Store {
	s := &Store{baseDir: baseDir, logger: zap.NewNop(), clock: clock.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Init() error {
	return errors.Wrapf(os.MkdirAll(s.baseDir, 0755), "create %s", s.baseDir)
}

// RunMetadata describes a saved trace.
type RunMetadata struct {
	ID          string                 `json:"id"`
	Source      string                 `json:"source"`
	Timestamp   time.Time              `json:"timestamp"`
	Dt          float64                `json:"dt"`
	Duration    float64                `json:"duration"`
	Frames      int                    `json:"frames"`
	LinkLengths kinematics.LinkLengths `json:"link_lengths"`
	Metrics     map[string]float64     `json:"metrics"`
}

// RunInfo is what the caller knows about a trace before it is saved.
type RunInfo struct {
	Source      string
	Dt          float64
	Duration    float64
	LinkLengths kinematics.LinkLengths
}

// Save writes result under a fresh id and returns it.
func (s *Store) Save(info RunInfo, result *trace.Result) (string, error) {
	now := s.clock.Now()
	runID := fmt.Sprintf("%s_%d_%s", idPrefix, now.Unix(), uuid.New().String()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrap(err, "create run dir")
	}

	meta := RunMetadata{
		ID:          runID,
		Source:      info.Source,
		Timestamp:   now,
		Dt:          info.Dt,
		Duration:    info.Duration,
		Frames:      result.Len(),
		LinkLengths: info.LinkLengths,
		Metrics:     result.Metrics,
	}
	if meta.Metrics == nil {
		meta.Metrics = map[string]float64{}
	}

	// metadata.json goes last: List only sees runs whose poses are complete.
	err := writeFile(filepath.Join(runDir, posesFile), func(w io.Writer) error {
		return WritePoses(w, result)
	})
	if err != nil {
		err = errors.Wrap(err, "write poses")
	} else {
		err = writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(meta)
		})
		if err != nil {
			err = errors.Wrap(err, "write metadata")
		}
	}
	if err != nil {
		return "", multierr.Append(err, os.RemoveAll(runDir))
	}

	s.logger.Info("saved run", zap.String("id", runID), zap.Int("frames", meta.Frames))
	return runID, nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return fn(f)
}

// WritePoses writes result as CSV with PoseHeader columns.
func WritePoses(w io.Writer, result *trace.Result) error {
	n := result.Len()
	if len(result.Angles) != n || len(result.Positions) != n {
		return errors.Wrapf(ErrMalformedResult, "%d times, %d poses, %d positions", n, len(result.Angles), len(result.Positions))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(PoseHeader); err != nil {
		return err
	}

	for i := 0; i < result.Len(); i++ {
		f := result.Frame(i)
		row := []string{
			formatFloat(f.Time),
			formatFloat(f.Angles.Base),
			formatFloat(f.Angles.Shoulder),
			formatFloat(f.Angles.Elbow),
			formatFloat(f.Position.X),
			formatFloat(f.Position.Y),
			formatFloat(f.Position.Z),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns every readable run, newest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrap(err, "list runs")
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Debug("skipping run", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "decode metadata of %s", runID)
	}

	return &meta, nil
}

// LoadPoses reads a run's trace back. Metrics come from its metadata.
func (s *Store) LoadPoses(runID string) (*trace.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, posesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	result, err := ReadPoses(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read poses of %s", runID)
	}
	result.Metrics = meta.Metrics
	return result, nil
}

// ReadPoses parses CSV written by WritePoses.
func ReadPoses(r io.Reader) (*trace.Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(PoseHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	result := &trace.Result{Metrics: map[string]float64{}}
	if len(records) < 2 {
		return result, nil
	}

	for i, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %s", i+1, PoseHeader[j])
			}
			vals[j] = v
		}

		result.Times = append(result.Times, vals[0])
		result.Angles = append(result.Angles, kinematics.JointAngles{
			Base: vals[1], Shoulder: vals[2], Elbow: vals[3],
		})
		result.Positions = append(result.Positions, r3.Vector{X: vals[4], Y: vals[5], Z: vals[6]})
	}

	return result, nil
}
