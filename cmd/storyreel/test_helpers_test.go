package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storyreel/internal/config"
	"storyreel/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv(config.ProjectsDirEnv, "")

	cfg := testsupport.NewConfig(t)

	configPath := filepath.Join(homeDir, ".config", "storyreel", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nprojects_dir = %q\nlog_dir = %q\n\n[history]\nenabled = %t\npath = %q\n\n[logging]\nformat = %q\nlevel = %q\n",
		cfg.Paths.ProjectsDir,
		cfg.Paths.LogDir,
		cfg.History.Enabled,
		cfg.History.Path,
		cfg.Logging.Format,
		cfg.Logging.Level,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func createTestProject(t *testing.T, env *cliTestEnv) string {
	t.Helper()
	out, _, err := runCLI(t, []string{
		"init", "Morning Routine Hacks",
		"--description", "Share three actionable tips to energise the viewer",
		"--tone", "upbeat",
		"--audience", "busy professionals",
		"--duration", "2",
	}, env.configPath)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	return parseProjectID(t, out)
}

func parseProjectID(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "Created project "); ok {
			return strings.TrimSpace(rest)
		}
	}
	t.Fatalf("no project id in output:\n%s", out)
	return ""
}
