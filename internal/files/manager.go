package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// DateLayout is the zero-padded ISO date used for day file names and headers.
	DateLayout = "2006-01-02"
	// Extension is appended to DateLayout to form a day file name.
	Extension = ".md"
)

// dayFilePattern keeps unrelated files in the log directory out of scans.
var dayFilePattern = glob.MustCompile("[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]" + Extension)

// Manager centralizes where day files live on disk and how they are named.
type Manager struct {
	basePath string
}

// DayFile is a day log discovered in the log directory.
type DayFile struct {
	Date time.Time
	Name string
	Path string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.ij_logs.
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath("")
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all day files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// DayName returns the file name for the calendar day of t.
func DayName(t time.Time) string {
	return t.Format(DateLayout) + Extension
}

// DayPath resolves the absolute path to the day file for the supplied time.
// The file may not exist yet.
func (m *Manager) DayPath(t time.Time) string {
	return filepath.Join(m.basePath, DayName(t))
}

// EnsureDir creates the log directory, including parents, if it is missing.
func (m *Manager) EnsureDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	return nil
}

// EnsureDayFile guarantees the directory exists and the day file is present,
// leaving any existing content untouched. It returns the absolute path.
func (m *Manager) EnsureDayFile(t time.Time) (string, error) {
	if err := m.EnsureDir(); err != nil {
		return "", err
	}

	path := m.DayPath(t)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open day file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close day file: %w", err)
	}
	return path, nil
}

// OpenAppend opens the day file for t in append mode, creating it if needed.
// The directory must already exist.
func (m *Manager) OpenAppend(t time.Time) (*os.File, error) {
	file, err := os.OpenFile(m.DayPath(t), os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("open day file: %w", err)
	}
	return file, nil
}

// DayFiles lists every day file in the log directory, oldest first. Names that
// look like dates but are not valid calendar days are ignored. A missing
// directory yields no files.
func (m *Manager) DayFiles() ([]DayFile, error) {
	entries, err := os.ReadDir(m.basePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var days []DayFile
	for _, entry := range entries {
		if entry.IsDir() || !dayFilePattern.Match(entry.Name()) {
			continue
		}
		date, err := time.ParseInLocation(DateLayout, strings.TrimSuffix(entry.Name(), Extension), time.Local)
		if err != nil {
			continue
		}
		days = append(days, DayFile{
			Date: date,
			Name: entry.Name(),
			Path: filepath.Join(m.basePath, entry.Name()),
		})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Name < days[j].Name
	})
	return days, nil
}
