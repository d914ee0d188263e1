package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesOnlyExplicitKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"guide":"weighted","seed":0}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Guide != GuideWeighted {
		t.Fatalf("Guide = %s, want weighted", cfg.Guide)
	}
	if !cfg.HasSeed || cfg.Seed != 0 {
		t.Fatalf("explicit seed=0 not distinguished from unset: HasSeed=%v Seed=%d", cfg.HasSeed, cfg.Seed)
	}
	if cfg.Depth != Default().Depth {
		t.Fatalf("Depth = %d, should remain default when unset", cfg.Depth)
	}
}

func TestSeedPtrNilWhenUnset(t *testing.T) {
	cfg := Default()
	if cfg.SeedPtr() != nil {
		t.Fatal("SeedPtr should be nil when seed was never set")
	}
	cfg.HasSeed = true
	cfg.Seed = 42
	p := cfg.SeedPtr()
	if p == nil || *p != 42 {
		t.Fatalf("SeedPtr = %v, want pointer to 42", p)
	}
}
