package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Validation/contract failure
	ExitCommandError = 2 // Command error (bad paths, unreadable files, etc.)
)

// Error codes used in JSON error responses.
const (
	ErrCodeRead     = "E_READ"
	ErrCodeDecode   = "E_DECODE"
	ErrCodeContract = "E_CONTRACT"
	ErrCodeConfig   = "E_CONFIG"
	ErrCodeBuild    = "E_BUILD"
	ErrCodeEncode   = "E_ENCODE"
	ErrCodeWrite    = "E_WRITE"
	ErrCodeArchive  = "E_ARCHIVE"
	ErrCodeNotFound = "E_NOT_FOUND"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // verbose/diagnostic output, kept off stdout JSON
	Verbose   bool
}

// CLIResponse is the standard JSON response envelope.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for JSON responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success outputs a successful result in the configured format. In text
// mode data is expected to be preformatted lines.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return f.writeJSON(CLIResponse{Status: "ok", Data: data})
	}
	if s, ok := data.(string); ok && s != "" {
		fmt.Fprintln(f.Writer, s)
	}
	return nil
}

// Failure outputs an error result in the configured format.
func (f *OutputFormatter) Failure(code, message string) error {
	if f.Format == "json" {
		return f.writeJSON(CLIResponse{Status: "error", Error: &CLIError{Code: code, Message: message}})
	}
	fmt.Fprintf(f.Writer, "%s %s\n", color.RedString("✗"), message)
	return nil
}

// OK prints a green check line in text mode.
func (f *OutputFormatter) OK(format string, args ...any) {
	if f.Format == "json" {
		return
	}
	fmt.Fprintf(f.Writer, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// VerboseLog writes diagnostics to the error stream when verbose is on,
// keeping stdout JSON intact.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

func (f *OutputFormatter) writeJSON(resp CLIResponse) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
