package convert

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.LinearDeflection != 0.1 {
		t.Errorf("LinearDeflection = %v, want 0.1", opts.LinearDeflection)
	}
	if !opts.RelativeDeflection {
		t.Error("RelativeDeflection should default to true")
	}
	if opts.AngularDeflection != 0.5 {
		t.Errorf("AngularDeflection = %v, want 0.5", opts.AngularDeflection)
	}
	if opts.RoundDecimals != 6 {
		t.Errorf("RoundDecimals = %v, want 6", opts.RoundDecimals)
	}
}

func TestLoadOptionsLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	content := "linear_deflection: 0.25\nround_decimals: 4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}

	if opts.LinearDeflection != 0.25 {
		t.Errorf("LinearDeflection = %v, want 0.25", opts.LinearDeflection)
	}
	if opts.RoundDecimals != 4 {
		t.Errorf("RoundDecimals = %v, want 4", opts.RoundDecimals)
	}
	// Unmentioned keys keep their defaults.
	if !opts.RelativeDeflection {
		t.Error("RelativeDeflection should stay true")
	}
	if opts.AngularDeflection != 0.5 {
		t.Errorf("AngularDeflection = %v, want 0.5", opts.AngularDeflection)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestKernelOptionsMapping(t *testing.T) {
	opts := Options{
		LinearDeflection:   0.2,
		RelativeDeflection: false,
		AngularDeflection:  0.7,
		RoundDecimals:      3,
	}
	ko := opts.kernelOptions()

	if ko.LinearDeflection != 0.2 || ko.Relative || ko.AngularDeflection != 0.7 {
		t.Errorf("kernelOptions() = %+v", ko)
	}
}
