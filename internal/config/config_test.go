package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bomberclassic/pkg/core"
)

// isolate 切到空的临时目录并屏蔽用户配置
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, Default())
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, "configs", "bomberman.yaml"), "game:\n  seed: 11\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Seed != 11 {
		t.Errorf("local config seed = %d, want 11", cfg.Game.Seed)
	}

	write(t, filepath.Join(dir, ".bomberman", "config.yaml"), "game:\n  seed: 22\n")
	if cfg, _ = Load(""); cfg.Game.Seed != 22 {
		t.Errorf("user config seed = %d, want 22", cfg.Game.Seed)
	}

	custom := filepath.Join(dir, "custom.yaml")
	write(t, custom, "game:\n  seed: 33\n  start_level: 4\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Seed != 33 || cfg.Game.StartLevel != 4 {
		t.Errorf("custom config = %+v", cfg.Game)
	}
	// 未写的字段保留默认值
	if cfg.Game.TickRate != 60 || cfg.Autopilot.Profile != "normal" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadBrokenUserConfigFallsThrough(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, ".bomberman", "config.yaml"), "game: [")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("broken user config should fall back to defaults, got %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}
	bad := filepath.Join(dir, "bad.yaml")
	write(t, bad, "game:\n  tick_rate: 0\n")
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("tick_rate 0: err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadMap(t *testing.T) {
	dir := isolate(t)
	m, err := LoadMap("")
	if err != nil || m.Spawn() != core.DefaultMap().Spawn() {
		t.Fatalf("LoadMap(\"\") = %v, %v", m, err)
	}

	path := filepath.Join(dir, "arena.txt")
	write(t, path, core.DefaultMap().String()+"\r\n")
	m, err = LoadMap(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != core.DefaultMap().String() {
		t.Errorf("round trip through file changed the map")
	}

	write(t, path, "###\n")
	if _, err := LoadMap(path); !errors.Is(err, core.ErrBadMap) {
		t.Errorf("short map: err = %v, want ErrBadMap", err)
	}
}
