package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var cliPath string

// TestMain builds the binary once for the workflow tests.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	binDir, err := os.MkdirTemp("", "enough-e2e")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create bin dir: %v\n", err)
		os.Exit(1)
	}
	cliPath = filepath.Join(binDir, "enough")

	build := exec.Command("go", "build", "-o", cliPath, ".")
	if out, err := build.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build enough: %v\n%s", err, out)
		os.RemoveAll(binDir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(binDir)
	os.Exit(code)
}

// isolatedEnv points HOME and the config at a temp dir.
func isolatedEnv(t *testing.T, config string) []string {
	t.Helper()
	tempDir := t.TempDir()

	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "ENOUGH_") {
			continue
		}
		env = append(env, e)
	}
	if config == "" {
		config = filepath.Join(tempDir, "enough", "enough.db")
	} else {
		config = filepath.Join(tempDir, config)
	}
	return append(env,
		"HOME="+tempDir,
		"NO_COLOR=1",
		"ENOUGH_CONFIG="+config,
	)
}

func runCmd(t *testing.T, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(cliPath, args...)
	cmd.Env = env
	// A pipe keeps the commands non-interactive.
	cmd.Stdin = strings.NewReader("")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command enough %v failed: %v\nOutput: %s", args, err, out)
	}
	return string(out)
}

func TestEndToEndWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping workflow test in short mode")
	}
	env := isolatedEnv(t, "")

	runCmd(t, env, "init")
	runCmd(t, env, "onboard", "--capacity", "80", "--style", "cup")
	runCmd(t, env, "task", "add", "Deep work", "-e", "50", "-d", "90", "-c", "work")
	runCmd(t, env, "add", "Walk", "the", "dog")
	runCmd(t, env, "task", "schedule", "1", "9am")

	out := runCmd(t, env, "task", "done", "2")
	if !strings.Contains(out, "Achievement unlocked: Getting Started") {
		t.Errorf("first completion output: %s", out)
	}

	out = runCmd(t, env, "energy")
	if !strings.Contains(out, "50 / 80 energy, 30 left") {
		t.Errorf("energy output: %s", out)
	}

	out = runCmd(t, env, "schedule")
	if !strings.Contains(out, "9 AM") || !strings.Contains(out, "Deep work") {
		t.Errorf("schedule output: %s", out)
	}

	out = runCmd(t, env, "complete", "--keep")
	if !strings.Contains(out, "50%") {
		t.Errorf("complete output: %s", out)
	}

	var doc struct {
		Tasks []struct {
			Name      string `json:"name"`
			Completed bool   `json:"completed"`
		} `json:"tasks"`
		Settings struct {
			DailyCapacity int `json:"dailyCapacity"`
		} `json:"settings"`
		Stats struct {
			TotalTasksCompleted int `json:"totalTasksCompleted"`
			CurrentStreak       int `json:"currentStreak"`
		} `json:"stats"`
	}
	out = runCmd(t, env, "export", "-f", "json")
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("export is not json: %v\n%s", err, out)
	}
	if len(doc.Tasks) != 2 || doc.Tasks[1].Name != "Walk the dog" || !doc.Tasks[1].Completed {
		t.Errorf("exported tasks = %+v", doc.Tasks)
	}
	if doc.Settings.DailyCapacity != 80 || doc.Stats.TotalTasksCompleted != 1 || doc.Stats.CurrentStreak != 1 {
		t.Errorf("exported settings/stats = %+v %+v", doc.Settings, doc.Stats)
	}

	runCmd(t, env, "backup", "create")
	out = runCmd(t, env, "backup", "list")
	if !strings.Contains(out, "enough-") {
		t.Errorf("backup list output: %s", out)
	}

	out = runCmd(t, env, "task", "clear")
	if !strings.Contains(out, "Cleared 1 completed tasks") {
		t.Errorf("clear output: %s", out)
	}

	out = runCmd(t, env, "doctor")
	if !strings.Contains(out, "Storage reachable: OK") {
		t.Errorf("doctor output: %s", out)
	}
}

func TestJSONBackendWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping workflow test in short mode")
	}
	env := isolatedEnv(t, "enough.json")

	runCmd(t, env, "init")
	runCmd(t, env, "add", "Stretch")
	out := runCmd(t, env, "task", "list")
	if !strings.Contains(out, "Stretch") {
		t.Errorf("task list output: %s", out)
	}
}

func TestFirstRunWithoutInit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping workflow test in short mode")
	}
	env := isolatedEnv(t, "")

	out := runCmd(t, env, "add", "Water plants")
	if !strings.Contains(out, "Water plants") {
		t.Errorf("quick add output missing task: %s", out)
	}
	out = runCmd(t, env, "task", "list")
	if !strings.Contains(out, "Water plants") {
		t.Errorf("task not persisted on first run: %s", out)
	}
}

