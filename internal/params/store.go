package params

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileVersion guards persisted weight files against format drift.
const FileVersion = "1.0.0"

// File is the on-disk envelope around a parameter set.
type File struct {
	Version   string `json:"version"`
	UpdatedAt string `json:"updatedAt"`
	Set
}

// LoadOptimized reads an optimized parameter file. A missing file or a
// version mismatch is not an error: the caller gets Defaults() and
// fromFile=false. Only an unreadable or malformed file errors.
func LoadOptimized(path string) (set Set, fromFile bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Defaults(), false, nil
	}
	if err != nil {
		return Set{}, false, fmt.Errorf("read params file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return Set{}, false, fmt.Errorf("parse params file: %w", err)
	}
	if f.Version != FileVersion {
		return Defaults(), false, nil
	}
	return f.Set, true, nil
}

// SaveOptimized writes a parameter set to path, creating parent
// directories as needed.
func SaveOptimized(path string, set Set) error {
	f := File{
		Version:   FileVersion,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Set:       set,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create params dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write params file: %w", err)
	}
	return nil
}

// LoadCalibration reads fitted sigmoid parameters, falling back to the
// default pair when no file exists.
func LoadCalibration(path string) (cal Calibration, fromFile bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultCalibration(), false, nil
	}
	if err != nil {
		return Calibration{}, false, fmt.Errorf("read calibration file: %w", err)
	}
	if err := json.Unmarshal(data, &cal); err != nil {
		return Calibration{}, false, fmt.Errorf("parse calibration file: %w", err)
	}
	return cal, true, nil
}

// SaveCalibration persists fitted sigmoid parameters. The value may carry
// extra fields (e.g. the Brier score of the fit); anything that marshals
// with slope/intercept keys loads back as a Calibration.
func SaveCalibration(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal calibration: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create calibration dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write calibration file: %w", err)
	}
	return nil
}
