package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/targets/internal/logging"
	"github.com/san-kum/targets/internal/targets"
)

const (
	metadataFile = "metadata.json"
	surfaceFile  = "surface.csv"
)

// Store keeps exported surfaces, one directory per export.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SurfaceMetadata struct {
	ID        string             `json:"id"`
	Target    string             `json:"target"`
	Timestamp time.Time          `json:"timestamp"`
	Size      float64            `json:"size"`
	Cmap      string             `json:"cmap"`
	GridSize  int                `json:"grid_size"`
	Params    map[string]float64 `json:"params"`
	Min       float64            `json:"min"`
	Max       float64            `json:"max"`
}

// Save writes the target's cached surface as metadata.json plus a long
// format surface.csv with one x,y,z row per grid node.
func (s *Store) Save(t targets.Target) (string, error) {
	now := time.Now()
	id := fmt.Sprintf("%s_%s", t.Name(), now.Format("20060102_150405.000000"))
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	surface := t.Surface()
	lo, hi := surface.Range()
	meta := SurfaceMetadata{
		ID:        id,
		Target:    t.Name(),
		Timestamp: now,
		Size:      t.Size(),
		Cmap:      t.Cmap(),
		GridSize:  len(surface.X),
		Params:    t.Params(),
		Min:       lo,
		Max:       hi,
	}

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, surfaceFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"x", "y", "z"}); err != nil {
		return "", err
	}
	for i, y := range surface.Y {
		for j, x := range surface.X {
			row := []string{
				strconv.FormatFloat(x, 'g', -1, 64),
				strconv.FormatFloat(y, 'g', -1, 64),
				strconv.FormatFloat(surface.Z[i][j], 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	logging.Diagf("%s: surface stored as %s", t.Name(), id)
	return id, nil
}

// List returns all stored exports, oldest first.
func (s *Store) List() ([]SurfaceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SurfaceMetadata{}, nil
		}
		return nil, err
	}

	exports := make([]SurfaceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			logging.Diagf("skipping %s: %v", entry.Name(), err)
			continue
		}
		exports = append(exports, *meta)
	}

	sort.Slice(exports, func(i, j int) bool {
		return exports[i].Timestamp.Before(exports[j].Timestamp)
	})
	return exports, nil
}

func (s *Store) Load(id string) (*SurfaceMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta SurfaceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSurface reads surface.csv back into a grid. Rows are expected in the
// order Save writes them: x varies fastest.
func (s *Store) LoadSurface(id string) (targets.Surface, error) {
	meta, err := s.Load(id)
	if err != nil {
		return targets.Surface{}, err
	}
	n := meta.GridSize

	file, err := os.Open(filepath.Join(s.baseDir, id, surfaceFile))
	if err != nil {
		return targets.Surface{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 3
	records, err := r.ReadAll()
	if err != nil {
		return targets.Surface{}, err
	}
	if len(records)-1 != n*n {
		return targets.Surface{}, fmt.Errorf("storage: %s: expected %d rows, got %d", id, n*n, len(records)-1)
	}

	surface := targets.Surface{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([][]float64, n),
	}
	for i := range surface.Z {
		surface.Z[i] = make([]float64, n)
	}

	for k, record := range records[1:] {
		var vals [3]float64
		for c := range vals {
			if vals[c], err = strconv.ParseFloat(record[c], 64); err != nil {
				return targets.Surface{}, fmt.Errorf("storage: %s row %d: %w", id, k+1, err)
			}
		}
		i, j := k/n, k%n
		surface.X[j] = vals[0]
		surface.Y[i] = vals[1]
		surface.Z[i][j] = vals[2]
	}
	return surface, nil
}
