package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ryanjeffares/compdb-vs/internal/compdb"
	"github.com/ryanjeffares/compdb-vs/internal/vsfs"
)

// The tlog layout, uppercase recorded paths, and on-disk casing here
// mirror what MSBuild actually produces.
func TestGenerateDatabase(t *testing.T) {
	buildDir := `C:\repo\build`
	fsys := vsfs.MapFS{
		`C:\repo\build\app\app.dir\Debug\app.tlog\CL.command.1.tlog`: []byte(
			"^C:\\REPO\\SRC\\FOO.CPP\r\n" +
				"/c /ZI /W4 /I\"C:\\REPO\\INC\" C:\\REPO\\SRC\\FOO.CPP\r\n"),
		`C:\repo\src\Foo.cpp`:  []byte("#include \"Bar.h\"\n"),
		`C:\repo\src\Bar.h`:    []byte(""),
		`C:\repo\inc\Unused.h`: []byte(""),
	}

	got, err := GenerateDatabase(fsys, buildDir, "Debug", false)
	if err != nil {
		t.Fatalf("GenerateDatabase failed: %v", err)
	}
	want := []compdb.CompileCommand{
		{
			Directory: buildDir,
			Command:   `cl.exe /c /ZI /W4 /I"C:\REPO\INC" C:\repo\src\Foo.cpp`,
			File:      `C:\repo\src\Foo.cpp`,
		},
		{
			Directory: buildDir,
			Command:   `cl.exe /c /ZI /W4 /I"C:\REPO\INC" C:\repo\src\Bar.h`,
			File:      `C:\repo\src\Bar.h`,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateDatabase diff -want +got:\n%s", diff)
	}

	seen := make(map[string]bool)
	for _, cmd := range got {
		key := strings.ToLower(cmd.File)
		if seen[key] {
			t.Errorf("duplicate file in database: %s", cmd.File)
		}
		seen[key] = true
	}
}

func TestGenerateDatabaseSkipHeaders(t *testing.T) {
	fsys := vsfs.MapFS{
		`C:\b\app\Debug\app.tlog\CL.command.1.tlog`: []byte("/c /ZI C:\\SRC\\FOO.CPP\n"),
		`C:\src\Foo.cpp`: []byte("#include \"Bar.h\"\n"),
		`C:\src\Bar.h`:   []byte(""),
	}

	got, err := GenerateDatabase(fsys, `C:\b`, "Debug", true)
	if err != nil {
		t.Fatalf("GenerateDatabase failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want the source entry only", len(got))
	}
	if got[0].File != `C:\src\Foo.cpp` {
		t.Errorf("File = %q", got[0].File)
	}
}

func TestGenerateDatabaseMissingBuildDir(t *testing.T) {
	if _, err := GenerateDatabase(vsfs.MapFS{}, `C:\nowhere`, "Debug", false); err == nil {
		t.Error("expected error for missing build directory")
	}
}

func withWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	}()
	fn()
}

func TestDoctorCommand(t *testing.T) {
	root := t.TempDir()
	logDir := filepath.Join(root, "build", "app", "app.dir", "Debug", "app.tlog")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "^SOURCE\r\n/c /ZI C:\\SRC\\FOO.CPP\r\n"
	if err := os.WriteFile(filepath.Join(logDir, "CL.command.1.tlog"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	withWorkingDir(t, root, func() {
		rootCmd := NewRootCommand("test")
		var buf bytes.Buffer
		rootCmd.SetOut(&buf)
		rootCmd.SetErr(&buf)
		rootCmd.SetArgs([]string{"doctor"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("doctor failed: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "tlog files:    1") {
			t.Errorf("doctor output missing tlog count:\n%s", out)
		}
		if !strings.Contains(out, "1 commands") {
			t.Errorf("doctor output missing command count:\n%s", out)
		}
	})
}

func TestDoctorMissingBuildDir(t *testing.T) {
	withWorkingDir(t, t.TempDir(), func() {
		rootCmd := NewRootCommand("test")
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs([]string{"doctor"})
		if err := rootCmd.Execute(); err == nil {
			t.Error("expected error for missing build directory")
		}
	})
}
