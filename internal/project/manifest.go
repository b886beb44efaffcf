package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the project is configured with.
const ManifestName = "owl.toml"

// Manifest is the parsed owl.toml. Поля Set* различают «не задано» и
// «задано нулевым»: явный флаг командной строки перекрывает манифест,
// а манифест перекрывает только то, что в нём реально написано.
type Manifest struct {
	// Path is where the manifest was found.
	Path string
	// Root is the directory containing it.
	Root string

	// [package]
	Name string

	// [check]
	DenyWarnings      bool
	SetDenyWarnings   bool
	NoWarnings        bool
	SetNoWarnings     bool
	MaxDiagnostics    int
	SetMaxDiagnostics bool
}

type manifestFile struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Check struct {
		DenyWarnings   bool `toml:"deny_warnings"`
		NoWarnings     bool `toml:"no_warnings"`
		MaxDiagnostics int  `toml:"max_diagnostics"`
	} `toml:"check"`
}

// ErrPackageNameMissing indicates that [package].name is absent or empty.
var ErrPackageNameMissing = errors.New("missing [package].name")

// Find walks up from startDir to locate owl.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	name := strings.TrimSpace(cfg.Package.Name)
	if !meta.IsDefined("package", "name") || name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}

	m := &Manifest{
		Path: path,
		Root: filepath.Dir(path),
		Name: name,
	}
	if meta.IsDefined("check", "deny_warnings") {
		m.DenyWarnings = cfg.Check.DenyWarnings
		m.SetDenyWarnings = true
	}
	if meta.IsDefined("check", "no_warnings") {
		m.NoWarnings = cfg.Check.NoWarnings
		m.SetNoWarnings = true
	}
	if meta.IsDefined("check", "max_diagnostics") {
		if cfg.Check.MaxDiagnostics < 0 {
			return nil, fmt.Errorf("%s: [check].max_diagnostics must not be negative", path)
		}
		m.MaxDiagnostics = cfg.Check.MaxDiagnostics
		m.SetMaxDiagnostics = true
	}
	return m, nil
}

// Discover finds and parses the nearest manifest above startDir. A missing
// manifest is not an error: (nil, nil) means «проект без owl.toml».
func Discover(startDir string) (*Manifest, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, err
	}
	return Load(path)
}
