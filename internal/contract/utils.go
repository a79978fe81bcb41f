package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Score label constants.
const (
	ExcellentValue = "Excellent"
	GoodValue      = "Good"
	FairValue      = "Fair"
	PoorValue      = "Poor"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold)
	GoodColor      = color.New(color.FgCyan)
	FairColor      = color.New(color.FgYellow)
	PoorColor      = color.New(color.FgRed, color.Bold)
)

// GetPlainLabel returns a plain text label for a score on the 0..100 scale.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return ExcellentValue
	case score >= 60:
		return GoodValue
	case score >= 40:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default:
		return PoorColor.Sprint(text)
	}
}

// FormatScore renders a score with the configured number of decimals.
// Exact ties round to even.
func FormatScore(score float64, precision int) string {
	return strconv.FormatFloat(score, 'f', precision, 64)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs an informational message to stderr.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "Info "+format+"\n", args...)
}

// GetDBFilePath returns the path to the default SQLite DB file for grading storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".grading.db"
	}
	return filepath.Join(homeDir, ".grading.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
