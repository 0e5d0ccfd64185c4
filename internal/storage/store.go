package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/export"
	"github.com/san-kum/emviz/internal/scene"
)

var (
	ErrRunNotFound  = errors.New("storage: run not found")
	ErrInvalidRunID = errors.New("storage: invalid run id")
)

const (
	metadataFile   = "metadata.json"
	primitivesFile = "primitives.csv"
)

var csvHeader = []string{
	"kind", "name", "x", "y", "z", "dx", "dy", "dz",
	"length", "radius", "height", "width", "points", "color", "opacity",
}

// Store keeps one directory per saved generation under baseDir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string           `json:"id"`
	Concept    string           `json:"concept"`
	Label      string           `json:"label"`
	Category   catalog.Category `json:"category"`
	Timestamp  time.Time        `json:"timestamp"`
	Params     config.Params    `json:"params"`
	Primitives int              `json:"primitives"`
	Handles    int              `json:"handles"`
	Counts     map[string]int   `json:"counts"`
}

// Save writes the metadata and primitive table of g and returns the run id.
func (s *Store) Save(concept string, p config.Params, g *scene.Subgraph) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", concept, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	dump := export.Dump(concept, p, g)
	meta := RunMetadata{
		ID:         runID,
		Concept:    concept,
		Label:      dump.Label,
		Category:   dump.Category,
		Timestamp:  now,
		Params:     p,
		Primitives: len(dump.Primitives),
		Handles:    dump.Handles,
		Counts:     dump.Counts,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, primitivesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, pr := range dump.Primitives {
		if err := w.Write(row(pr)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return runID, nil
}

func ff(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

func row(p export.Primitive) []string {
	name := p.Name
	if p.Text != "" {
		name = p.Text
	}
	return []string{
		p.Kind, name,
		ff(p.Anchor[0]), ff(p.Anchor[1]), ff(p.Anchor[2]),
		ff(p.Dir[0]), ff(p.Dir[1]), ff(p.Dir[2]),
		ff(p.Length), ff(p.Radius), ff(p.Height), ff(p.Width),
		strconv.Itoa(p.Points), p.Color, ff(p.Opacity),
	}
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

// runDir resolves a run id to its directory. Ids are single path elements.
func (s *Store) runDir(runID string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || filepath.Base(runID) != runID || strings.ContainsAny(runID, `/\`) {
		return "", fmt.Errorf("%q: %w", runID, ErrInvalidRunID)
	}
	return filepath.Join(s.baseDir, runID), nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadPrimitives reads back the primitive table of a run. Rows that fail
// to parse are skipped.
func (s *Store) LoadPrimitives(runID string) ([]export.Primitive, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(dir, primitivesFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []export.Primitive{}, nil
	}

	out := make([]export.Primitive, 0, len(records)-1)
	for _, rec := range records[1:] {
		nums := make([]float64, 10)
		ok := true
		for i := range nums {
			v, err := strconv.ParseFloat(rec[2+i], 64)
			if err != nil {
				ok = false
				break
			}
			nums[i] = v
		}
		points, err := strconv.Atoi(rec[12])
		opacity, err2 := strconv.ParseFloat(rec[14], 64)
		if !ok || err != nil || err2 != nil {
			continue
		}
		p := export.Primitive{
			Kind:    rec[0],
			Name:    rec[1],
			Anchor:  [3]float64{nums[0], nums[1], nums[2]},
			Dir:     [3]float64{nums[3], nums[4], nums[5]},
			Length:  nums[6],
			Radius:  nums[7],
			Height:  nums[8],
			Width:   nums[9],
			Points:  points,
			Color:   rec[13],
			Opacity: opacity,
		}
		if strings.EqualFold(p.Kind, scene.KindLabel.String()) {
			p.Text = p.Name
		}
		out = append(out, p)
	}
	return out, nil
}

// Delete removes a run directory.
func (s *Store) Delete(runID string) error {
	dir, err := s.runDir(runID)
	if err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Join(dir, metadataFile)); err != nil {
		return fmt.Errorf("%s: %w", runID, ErrRunNotFound)
	}
	return os.RemoveAll(dir)
}
