package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Value tier labels.
const (
	ExceptionalValue = "Exceptional" // Exceptional contributor value
	HighValue        = "High"        // High contributor value
	ModerateValue    = "Moderate"    // Moderate contributor value
	LowValue         = "Low"         // Low contributor value
)

// Color variables for console output.
var (
	ExceptionalColor = color.New(color.FgGreen, color.Bold) // exceptionalColor marks the top tier.
	HighColor        = color.New(color.FgCyan, color.Bold)  // highColor marks strong contributions.
	ModerateColor    = color.New(color.FgYellow)            // moderateColor represents standard output, not bold.
	LowColor         = color.New(color.FgRed)               // lowColor flags contributions needing attention.
)

// GetPlainLabel returns a plain text label for a contributor value score.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return ExceptionalValue
	case score >= 60:
		return HighValue
	case score >= 40:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case ExceptionalValue:
		return ExceptionalColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file used for
// analysis run history when no connection string is provided.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitvalue_history.db"
	}
	return filepath.Join(homeDir, ".gitvalue_history.db")
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
