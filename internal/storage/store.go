package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/synesthetica/internal/engine"
)

// WorkspaceKey names the persisted workspace record.
const WorkspaceKey = "synesthetica_workspace"

var ErrNoWorkspace = errors.New("storage: no saved workspace")

// Workspace is everything the user can save and restore in one go.
type Workspace struct {
	FunctionInput           string             `json:"functionInput"`
	CurrentMode             string             `json:"currentMode"`
	Algorithm               string             `json:"algorithm"`
	Parameters              engine.Params      `json:"parameters"`
	SonificationEngineID    string             `json:"sonificationEngineId"`
	SonificationParams      map[string]float64 `json:"sonificationParams"`
	Volume                  float64            `json:"volume"`
	IsMuted                 bool               `json:"isMuted"`
	ShowEquation            bool               `json:"showEquation"`
	UseAdaptiveCentering    bool               `json:"useAdaptiveCentering"`
	ShowExperimentalEngines bool               `json:"showExperimentalEngines"`
	ShowEditableEquation    bool               `json:"showEditableEquation"`
}

func DefaultWorkspace() Workspace {
	return Workspace{
		FunctionInput:        "a * sin(b * x + t)",
		CurrentMode:          "fiber",
		Algorithm:            engine.DefaultAlgorithm,
		Parameters:           engine.Params{},
		SonificationEngineID: "fm",
		SonificationParams:   map[string]float64{},
		Volume:               0.5,
		UseAdaptiveCentering: true,
	}
}

// savedWorkspace mirrors Workspace with every field optional. Empty strings
// and missing maps fall back to the default; booleans and volume fall back
// only when absent or null.
type savedWorkspace struct {
	FunctionInput           string             `json:"functionInput"`
	CurrentMode             string             `json:"currentMode"`
	Algorithm               string             `json:"algorithm"`
	Parameters              engine.Params      `json:"parameters"`
	SonificationEngineID    string             `json:"sonificationEngineId"`
	SonificationParams      map[string]float64 `json:"sonificationParams"`
	Volume                  *float64           `json:"volume"`
	IsMuted                 *bool              `json:"isMuted"`
	ShowEquation            *bool              `json:"showEquation"`
	UseAdaptiveCentering    *bool              `json:"useAdaptiveCentering"`
	ShowExperimentalEngines *bool              `json:"showExperimentalEngines"`
	ShowEditableEquation    *bool              `json:"showEditableEquation"`
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orValue[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func (s savedWorkspace) resolve() Workspace {
	d := DefaultWorkspace()
	w := Workspace{
		FunctionInput:           orString(s.FunctionInput, d.FunctionInput),
		CurrentMode:             orString(s.CurrentMode, d.CurrentMode),
		Algorithm:               orString(s.Algorithm, d.Algorithm),
		Parameters:              s.Parameters,
		SonificationEngineID:    orString(s.SonificationEngineID, d.SonificationEngineID),
		SonificationParams:      s.SonificationParams,
		Volume:                  orValue(s.Volume, d.Volume),
		IsMuted:                 orValue(s.IsMuted, d.IsMuted),
		ShowEquation:            orValue(s.ShowEquation, d.ShowEquation),
		UseAdaptiveCentering:    orValue(s.UseAdaptiveCentering, d.UseAdaptiveCentering),
		ShowExperimentalEngines: orValue(s.ShowExperimentalEngines, d.ShowExperimentalEngines),
		ShowEditableEquation:    orValue(s.ShowEditableEquation, d.ShowEditableEquation),
	}
	if w.Parameters == nil {
		w.Parameters = d.Parameters
	}
	if w.SonificationParams == nil {
		w.SonificationParams = d.SonificationParams
	}
	return w
}

// DecodeWorkspace parses a saved record, filling in defaults. Unknown keys
// are ignored.
func DecodeWorkspace(data []byte) (Workspace, error) {
	var s savedWorkspace
	if err := json.Unmarshal(data, &s); err != nil {
		return Workspace{}, fmt.Errorf("storage: decode workspace: %w", err)
	}
	return s.resolve(), nil
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Path is the file backing the workspace record.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, WorkspaceKey+".json")
}

// SaveWorkspace writes w atomically through a temporary file.
func (s *Store) SaveWorkspace(w Workspace) error {
	if err := s.Init(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return err
	}
	tmp := fmt.Sprintf("%s.%d.tmp", s.Path(), time.Now().UnixNano())
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path())
}

// LoadWorkspace returns ErrNoWorkspace when nothing was saved yet.
func (s *Store) LoadWorkspace() (Workspace, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Workspace{}, ErrNoWorkspace
		}
		return Workspace{}, err
	}
	return DecodeWorkspace(data)
}

// ResetWorkspace removes the saved record. Removing nothing is not an error.
func (s *Store) ResetWorkspace() error {
	err := os.Remove(s.Path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
