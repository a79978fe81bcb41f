//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedGradingPath holds the path to a shared grading binary built once for all tests.
	sharedGradingPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getGradingBinary returns the path to the grading binary, building it once if needed.
func getGradingBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "grading-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		gradingPath := filepath.Join(tempDir, "grading")
		buildCmd := exec.Command("go", "build", "-o", gradingPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if err := buildCmd.Run(); err != nil {
			panic(fmt.Sprintf("failed to build grading: %v", err))
		}

		sharedGradingPath = gradingPath
	})

	return sharedGradingPath
}

// runGradingCommand runs the grading binary from the project root and returns its combined output.
func runGradingCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getGradingBinary(), args...)
	cmd.Dir = "../"
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}
