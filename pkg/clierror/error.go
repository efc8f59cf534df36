// Package clierror provides structured errors for CLI output with codes,
// exit codes, and remediation hints.
package clierror

import (
	"encoding/json"
	"fmt"
	"os"
)

// Exit codes for the simulator CLI.
const (
	ExitSuccess = 0 // Operation completed successfully
	ExitGeneral = 1 // Unknown/unhandled error
	ExitConfig  = 2 // Config file missing or invalid
	ExitTrace   = 3 // Trace file could not be written or read
)

// Error codes (strings) for programmatic error handling
const (
	CodeConfigNotFound = "CONFIG_NOT_FOUND"
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeTraceIO        = "TRACE_IO"
	CodeInternalError  = "INTERNAL_ERROR"
)

// CLIError represents a structured error for CLI output.
type CLIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Hint      string `json:"hint,omitempty"`
	Retryable bool   `json:"retryable"`
	ExitCode  int    `json:"-"` // Not serialized, used for os.Exit
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// ConfigNotFound creates an error for a missing config file.
func ConfigNotFound(path string) *CLIError {
	return &CLIError{
		Code:      CodeConfigNotFound,
		Message:   fmt.Sprintf("config file '%s' not found", path),
		Hint:      "Check the --config path, or omit it to use the defaults",
		Retryable: false,
		ExitCode:  ExitConfig,
	}
}

// ConfigInvalid creates an error for a config that fails parsing or
// validation.
func ConfigInvalid(path string, err error) *CLIError {
	return &CLIError{
		Code:      CodeConfigInvalid,
		Message:   fmt.Sprintf("config file '%s' is invalid: %s", path, err),
		Hint:      "See 'ringsim run --help' for the accepted fields and ranges",
		Retryable: false,
		ExitCode:  ExitConfig,
	}
}

// TraceIO creates an error for trace file read/write failures.
func TraceIO(path string, err error) *CLIError {
	return &CLIError{
		Code:      CodeTraceIO,
		Message:   fmt.Sprintf("trace file '%s': %s", path, err),
		Hint:      "Check the path is writable and has free space",
		Retryable: true,
		ExitCode:  ExitTrace,
	}
}

// InternalError creates an error for unexpected internal errors.
func InternalError(err error) *CLIError {
	msg := "an unexpected internal error occurred"
	if err != nil {
		msg = fmt.Sprintf("internal error: %s", err.Error())
	}
	return &CLIError{
		Code:      CodeInternalError,
		Message:   msg,
		Hint:      "",
		Retryable: false,
		ExitCode:  ExitGeneral,
	}
}

// FormatError returns the error formatted for the given output format.
// Supported formats: "json" for JSON output, anything else for human-readable table format.
func FormatError(err *CLIError, outputFormat string) string {
	if outputFormat == "json" {
		data, jsonErr := json.MarshalIndent(err, "", "  ")
		if jsonErr != nil {
			// Fallback to simple JSON if marshaling fails
			return fmt.Sprintf(`{"code":"%s","message":"%s"}`, err.Code, err.Message)
		}
		return string(data)
	}

	// Human-readable table format
	output := fmt.Sprintf("Error [%s]: %s", err.Code, err.Message)
	if err.Hint != "" {
		output += fmt.Sprintf("\nHint: %s", err.Hint)
	}
	return output
}

// PrintError prints the error to stderr in the appropriate format.
func PrintError(err *CLIError, outputFormat string) {
	fmt.Fprintln(os.Stderr, FormatError(err, outputFormat))
}

// ExitCodeFor returns the exit code carried by a CLIError, or ExitGeneral
// for any other error.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ce, ok := err.(*CLIError); ok {
		return ce.ExitCode
	}
	return ExitGeneral
}
