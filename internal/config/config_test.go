package config

import (
	"os"
	"path/filepath"
	"testing"

	"studyorg/internal/items/data"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"STUDYORG_CONFIG", "STUDYORG_NAME", "STUDYORG_THEME", "STUDYORG_TAB", "STUDYORG_LOG_DIR", "STUDYORG_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func missingPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.yaml")
}

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Default(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(CLIFlags{ConfigPath: missingPath(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.StudentName != "Student" {
		t.Errorf("expected default name 'Student', got %q", cfg.StudentName)
	}
	if cfg.Theme != ThemeDark {
		t.Errorf("expected default theme dark, got %q", cfg.Theme)
	}
	if cfg.Tab() != data.CategoryAssignment {
		t.Errorf("expected assignments tab, got %v", cfg.Tab())
	}
	if !cfg.SeedDemo {
		t.Error("expected demo seed enabled")
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
student_name: Ada
theme: light
default_tab: grades
seed_demo: false
items:
  grades:
    - name: Midterm
      details: "91.50%"
`)

	cfg, err := Load(CLIFlags{ConfigPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StudentName != "Ada" || cfg.Theme != ThemeLight || cfg.Tab() != data.CategoryGrade {
		t.Errorf("file values not applied: %+v", cfg)
	}
	seed := cfg.Seed()
	if len(seed.Assignments) != 0 {
		t.Errorf("expected no demo assignments, got %d", len(seed.Assignments))
	}
	if len(seed.Grades) != 1 || seed.Grades[0].Details != "91.50%" {
		t.Errorf("expected one configured grade, got %+v", seed.Grades)
	}
}

func TestLoad_EnvVar(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "student_name: FromFile\ntheme: light\n")
	t.Setenv("STUDYORG_NAME", "FromEnv")

	cfg, err := Load(CLIFlags{ConfigPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StudentName != "FromEnv" {
		t.Errorf("expected env to override file, got %q", cfg.StudentName)
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("expected file theme to survive, got %q", cfg.Theme)
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("STUDYORG_NAME", "FromEnv")
	t.Setenv("STUDYORG_TAB", "exams")

	cfg, err := Load(CLIFlags{ConfigPath: missingPath(t), StudentName: "FromFlag", NoSeed: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.StudentName != "FromFlag" {
		t.Errorf("expected FromFlag, got %q", cfg.StudentName)
	}
	if cfg.Tab() != data.CategoryExam {
		t.Errorf("expected exams tab from env, got %v", cfg.Tab())
	}
	if !cfg.Seed().IsEmpty() {
		t.Error("expected empty seed with --no-seed")
	}
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "student_name: Grace\n")
	t.Setenv("STUDYORG_CONFIG", path)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StudentName != "Grace" {
		t.Errorf("expected Grace, got %q", cfg.StudentName)
	}
}

func TestLoad_InvalidTheme(t *testing.T) {
	clearEnv(t)
	if _, err := Load(CLIFlags{ConfigPath: missingPath(t), Theme: "neon"}); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "student_name: [unterminated\n")
	if _, err := Load(CLIFlags{ConfigPath: path}); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_PathExpansion(t *testing.T) {
	clearEnv(t)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}
	t.Setenv("STUDYORG_LOG_DIR", "~/studyorg-logs")

	cfg, err := Load(CLIFlags{ConfigPath: missingPath(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := filepath.Join(homeDir, "studyorg-logs")
	if cfg.LogDir != expected {
		t.Errorf("expected %q, got %q", expected, cfg.LogDir)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := EnsureConfigFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load(CLIFlags{ConfigPath: path})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.StudentName != "Student" || !cfg.SeedDemo {
		t.Errorf("unexpected defaults from written file: %+v", cfg)
	}
}
