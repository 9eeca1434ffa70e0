package project

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/simplespec-labs/simplespec/internal/paths"
)

// Record is the structure of .simplespec/install.yaml.
type Record struct {
	Version     string    `yaml:"version"`
	InstallMode string    `yaml:"install_mode"`
	Runtimes    []string  `yaml:"runtimes"`
	InstalledAt time.Time `yaml:"installed_at,omitempty"`
}

// Load reads and validates the install record under root. A missing record
// is reported with an error satisfying os.IsNotExist.
func Load(root string) (*Record, error) {
	data, err := os.ReadFile(paths.RecordPath(root))
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid install record: %s", result.Summary())
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing install record: %w", err)
	}
	return &rec, nil
}

// Save writes rec to the install record under root.
func Save(root string, rec *Record) error {
	path := paths.RecordPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling install record: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing install record: %w", err)
	}
	return nil
}

// RecordInstall merges an install batch into the record under root, creating
// the record if needed. Runtimes keep their first-installed order.
func RecordInstall(root, version, mode string, runtimes []string, now time.Time) (*Record, error) {
	rec, err := Load(root)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		rec = &Record{}
	}

	rec.Version = version
	rec.InstallMode = mode
	for _, id := range runtimes {
		if !slices.Contains(rec.Runtimes, id) {
			rec.Runtimes = append(rec.Runtimes, id)
		}
	}
	rec.InstalledAt = now.UTC().Truncate(time.Second)

	if err := Save(root, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// RecordUninstall drops runtimes from the record under root. Missing records
// are left missing.
func RecordUninstall(root string, runtimes []string) error {
	rec, err := Load(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	rec.Runtimes = slices.DeleteFunc(rec.Runtimes, func(id string) bool {
		return slices.Contains(runtimes, id)
	})
	return Save(root, rec)
}

// String renders a one-line summary of the record.
func (r *Record) String() string {
	return fmt.Sprintf("%s install of [%s] by v%s", r.InstallMode, strings.Join(r.Runtimes, ", "), strings.TrimPrefix(r.Version, "v"))
}
