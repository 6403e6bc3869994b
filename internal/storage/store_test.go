package storage

import (
	"errors"
	"os"
	"testing"
)

func TestWorkspaceSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	w := DefaultWorkspace()
	w.CurrentMode = "zeta"
	w.Algorithm = "v3"
	w.Parameters["numZeros"] = 12
	w.Volume = 0
	w.UseAdaptiveCentering = false

	if err := st.SaveWorkspace(w); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := st.LoadWorkspace()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got.CurrentMode != "zeta" || got.Algorithm != "v3" {
		t.Errorf("expected zeta/v3, got %s/%s", got.CurrentMode, got.Algorithm)
	}
	if got.Parameters["numZeros"] != 12 {
		t.Errorf("expected numZeros 12, got %v", got.Parameters["numZeros"])
	}
	if got.Volume != 0 {
		t.Errorf("explicit zero volume should survive, got %v", got.Volume)
	}
	if got.UseAdaptiveCentering {
		t.Error("explicit false should survive")
	}
}

func TestLoadMissingWorkspace(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.LoadWorkspace(); !errors.Is(err, ErrNoWorkspace) {
		t.Errorf("expected ErrNoWorkspace, got %v", err)
	}
}

func TestDecodeWorkspaceDefaults(t *testing.T) {
	tests := []struct {
		name string
		json string
		mode string
		vol  float64
	}{
		{"missing volume", `{"currentMode":"graph"}`, "graph", 0.5},
		{"null volume", `{"volume":null}`, "fiber", 0.5},
		{"empty mode", `{"currentMode":"","volume":0.8}`, "fiber", 0.8},
		{"unknown keys", `{"foo":1,"volume":0.1}`, "fiber", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := DecodeWorkspace([]byte(tt.json))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if w.CurrentMode != tt.mode {
				t.Errorf("mode = %s, want %s", w.CurrentMode, tt.mode)
			}
			if w.Volume != tt.vol {
				t.Errorf("volume = %v, want %v", w.Volume, tt.vol)
			}
			if !w.UseAdaptiveCentering {
				t.Error("adaptive centering should default to true")
			}
			if w.Parameters == nil || w.SonificationParams == nil {
				t.Error("maps should default to empty")
			}
			if w.FunctionInput != "a * sin(b * x + t)" || w.SonificationEngineID != "fm" {
				t.Errorf("string defaults not applied: %+v", w)
			}
		})
	}
}

func TestDecodeWorkspaceRejectsGarbage(t *testing.T) {
	if _, err := DecodeWorkspace([]byte("{not json")); err == nil {
		t.Error("expected error")
	}
}

func TestResetWorkspace(t *testing.T) {
	st := New(t.TempDir())
	if err := st.ResetWorkspace(); err != nil {
		t.Fatalf("reset on empty store: %v", err)
	}
	if err := st.SaveWorkspace(DefaultWorkspace()); err != nil {
		t.Fatal(err)
	}
	if err := st.ResetWorkspace(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(st.Path()); !os.IsNotExist(err) {
		t.Errorf("workspace file still present: %v", err)
	}
}
