package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/fields"
	"github.com/san-kum/emviz/internal/scene"
	"github.com/san-kum/emviz/internal/storage"
)

// storeCmd builds a command with the persistent data flag and resets the
// package flag state when the test ends.
func storeCmd(t *testing.T, cfgPath string) *cobra.Command {
	t.Helper()
	oldData, oldConfig, oldPreset := dataDir, configFile, preset
	t.Cleanup(func() { dataDir, configFile, preset = oldData, oldConfig, oldPreset })

	configFile, preset = cfgPath, ""
	cmd := &cobra.Command{Use: "runs"}
	cmd.Flags().StringVar(&dataDir, "data", config.DefaultDir, "")
	return cmd
}

func saveRun(t *testing.T, dir string) string {
	t.Helper()
	p := config.DefaultParams()
	g := fields.Generate(fields.NewEnv(scene.NewTracker(), 1), "gauss-law", p)
	id, err := storage.New(dir).Save("gauss-law", p, g)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestOpenStore_ConfigDataDir(t *testing.T) {
	tmp := t.TempDir()
	runsDir := filepath.Join(tmp, "runs")
	id := saveRun(t, runsDir)

	cfgPath := filepath.Join(tmp, "emviz.yaml")
	if err := os.WriteFile(cfgPath, []byte("data_dir: "+runsDir+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := openStore(storeCmd(t, cfgPath))
	if err != nil {
		t.Fatal(err)
	}
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != id {
		t.Errorf("runs = %v, want [%s]", runs, id)
	}
}

func TestOpenStore_DataFlagOverridesConfig(t *testing.T) {
	tmp := t.TempDir()
	flagDir := filepath.Join(tmp, "flag")
	id := saveRun(t, flagDir)

	cfgPath := filepath.Join(tmp, "emviz.yaml")
	if err := os.WriteFile(cfgPath, []byte("data_dir: "+filepath.Join(tmp, "file")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := storeCmd(t, cfgPath)
	if err := cmd.Flags().Set("data", flagDir); err != nil {
		t.Fatal(err)
	}
	st, err := openStore(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.Load(id); err != nil {
		t.Errorf("Load(%s) = %v, want the run from --data", id, err)
	}
}

func TestTUILogger_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	lg, closer := tuiLogger(dir, logLevel())
	lg.Warn("unknown concept", "id", "tachyon-field")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, tuiLogFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "tachyon-field") {
		t.Errorf("log file = %q, want the warning", data)
	}
}

func TestTUILogger_UnwritableDirDiscards(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	lg, closer := tuiLogger(file, logLevel())
	lg.Error("dropped")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestSaturatedRange(t *testing.T) {
	tests := []struct {
		name   string
		g      fields.Glyph
		lo, hi float64
		ok     bool
	}{
		// 0.5/r² reaches the cap 1.5 at r = 1/√3
		{"inverse-square near", fields.Glyph{Law: fields.InverseSquare, Scale: 0.5, Cap: 1.5}, 0.2, 1 / math.Sqrt(3), true},
		{"linear far", fields.Glyph{Law: fields.Linear, Scale: 0.5, Cap: 1.5}, 3, 6, true},
		{"constant below cap", fields.Glyph{Law: fields.Constant, Scale: 0.5, Cap: 1.5}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := saturatedRange(tt.g, 1, 0.2, 6, falloffSamples)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			step := (6 - 0.2) / float64(falloffSamples-1)
			if math.Abs(lo-tt.lo) > step || math.Abs(hi-tt.hi) > step {
				t.Errorf("range = [%v, %v], want about [%v, %v]", lo, hi, tt.lo, tt.hi)
			}
			if !tt.g.Saturated(1, lo) || !tt.g.Saturated(1, hi) {
				t.Errorf("endpoints [%v, %v] not saturated", lo, hi)
			}
		})
	}
}
