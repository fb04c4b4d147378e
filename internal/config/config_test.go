package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, info, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadConfigWithInfo: %v", err)
	}
	if info.Found || info.PortSpecified {
		t.Fatalf("unexpected info: %+v", info)
	}
	def := DefaultConfig()
	if cfg.Server.Port != def.Server.Port || cfg.Report.DefaultScore != 5 || !cfg.Data.History {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigOverridesSections(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 8088

[report]
default_score = 6
sheet_name = "Reports"
seed = 42
`)

	cfg, info, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo: %v", err)
	}
	if !info.Found || !info.PortSpecified {
		t.Fatalf("unexpected info: %+v", info)
	}
	if cfg.Server.Port != 8088 {
		t.Fatalf("port = %d, want 8088", cfg.Server.Port)
	}
	if cfg.Report.DefaultScore != 6 || cfg.Report.SheetName != "Reports" || cfg.Report.Seed != 42 {
		t.Fatalf("unexpected report config: %+v", cfg.Report)
	}
	// 未出现的段保留默认值
	if cfg.Data.DataDir != "data" || !cfg.Data.History {
		t.Fatalf("unexpected data config: %+v", cfg.Data)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv(EnvDataDir, "/srv/reportgen")
	t.Setenv(EnvSeed, "7")

	cfg, _, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadConfigWithInfo: %v", err)
	}
	if cfg.Data.DataDir != "/srv/reportgen" {
		t.Fatalf("data dir = %s", cfg.Data.DataDir)
	}
	if cfg.Report.Seed != 7 {
		t.Fatalf("seed = %d, want 7", cfg.Report.Seed)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad toml":      "[server\nport = 1",
		"default score": "[report]\ndefault_score = 11",
		"port":          "[server]\nport = 70000",
	}
	for name, content := range cases {
		if _, _, err := LoadConfigWithInfo(writeConfig(t, content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	t.Setenv(EnvSeed, "abc")
	if _, _, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Fatalf("expected error for invalid seed")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := DefaultConfig()
	cfg.Server.Port = 9000
	cfg.Report.InputSheet = "Scores"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, _, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo: %v", err)
	}
	if loaded.Server.Port != 9000 || loaded.Report.InputSheet != "Scores" {
		t.Fatalf("unexpected loaded config: %+v", loaded)
	}
}

func TestEnsureDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.DataDir = filepath.Join(t.TempDir(), "data")

	dir, err := EnsureDataDir(cfg)
	if err != nil {
		t.Fatalf("EnsureDataDir: %v", err)
	}
	if dir != cfg.Data.DataDir {
		t.Fatalf("dir = %s, want %s", dir, cfg.Data.DataDir)
	}
	for _, sub := range []string{"uploads", "exports"} {
		if st, err := os.Stat(filepath.Join(dir, sub)); err != nil || !st.IsDir() {
			t.Fatalf("missing subdir %s: %v", sub, err)
		}
	}
}

func TestGetDataPathUsesDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.DataDir = filepath.Join(t.TempDir(), "data")

	if got, want := GetDataPath(cfg, "exports", ""), filepath.Join(cfg.Data.DataDir, "exports"); got != want {
		t.Fatalf("GetDataPath() = %s, want %s", got, want)
	}
	if got, want := GetDataPath(cfg, "uploads", "a.xlsx"), filepath.Join(cfg.Data.DataDir, "uploads", "a.xlsx"); got != want {
		t.Fatalf("GetDataPath() = %s, want %s", got, want)
	}
}
