package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDayPath(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	date := time.Date(2025, time.November, 2, 23, 59, 0, 0, time.UTC)
	path := mgr.DayPath(date)

	want := filepath.Join(tmp, "2025-11-02.md")
	if path != want {
		t.Fatalf("DayPath() = %q, want %q", path, want)
	}
}

func TestEnsureDirCreatesNestedDirectories(t *testing.T) {
	base := filepath.Join(t.TempDir(), "a", "b", "logs")

	mgr, err := NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := mgr.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}

	info, err := os.Stat(base)
	if err != nil {
		t.Fatalf("expected directory %q to exist: %v", base, err)
	}
	if !info.IsDir() {
		t.Fatalf("%q is not a directory", base)
	}
}

func TestEnsureDirFailsWhenPathIsAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	mgr, err := NewManager(filepath.Join(blocker, "logs"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := mgr.EnsureDir(); err == nil {
		t.Fatalf("EnsureDir expected error, got nil")
	}
}

func TestEnsureDayFileKeepsExistingContent(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	date := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.Local)
	path, err := mgr.EnsureDayFile(date)
	if err != nil {
		t.Fatalf("EnsureDayFile: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(contents) != 0 {
		t.Fatalf("new day file contents = %q, want empty", contents)
	}

	if err := os.WriteFile(path, []byte("09:00 standup\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := mgr.EnsureDayFile(date); err != nil {
		t.Fatalf("EnsureDayFile second call: %v", err)
	}
	contentsAgain, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile second: %v", err)
	}
	if string(contentsAgain) != "09:00 standup\n" {
		t.Fatalf("day file contents after second ensure = %q", contentsAgain)
	}
}

func TestDayFilesSortedAndFiltered(t *testing.T) {
	tmp := t.TempDir()

	for _, name := range []string{
		"2025-11-03.md",
		"2025-10-31.md",
		"2025-11-01.md",
		"notes.md",
		"2025-13-40.md",
		"2025-11-02.txt",
		"2025-11-02.md.bak",
	} {
		if err := os.WriteFile(filepath.Join(tmp, name), nil, 0o644); err != nil {
			t.Fatalf("WriteFile %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmp, "2025-11-04.md"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	days, err := mgr.DayFiles()
	if err != nil {
		t.Fatalf("DayFiles: %v", err)
	}

	want := []string{"2025-10-31.md", "2025-11-01.md", "2025-11-03.md"}
	if len(days) != len(want) {
		t.Fatalf("DayFiles() returned %d files, want %d: %#v", len(days), len(want), days)
	}
	for i, day := range days {
		if day.Name != want[i] {
			t.Fatalf("days[%d].Name = %q, want %q", i, day.Name, want[i])
		}
		if day.Date.Format(DateLayout)+Extension != day.Name {
			t.Fatalf("days[%d].Date = %s does not match %q", i, day.Date, day.Name)
		}
	}
}

func TestDayFilesMissingDirectory(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	days, err := mgr.DayFiles()
	if err != nil {
		t.Fatalf("DayFiles: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("DayFiles() = %#v, want none", days)
	}
}
