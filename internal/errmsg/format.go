// Package errmsg builds the user-facing failure strings shown in the
// status bar and the error popup.
package errmsg

import "fmt"

// Op names a failed operation. The values are phrased to read after
// "Failed to".
type Op string

const (
	OpImageLoad    Op = "load image"
	OpSessionLoad  Op = "restore session"
	OpSettingsLoad Op = "load viewer settings"
	OpSettingsSave Op = "save viewer settings"
	OpInitialize   Op = "initialize application"
)

// Format renders "Failed to <op>: <err>". A nil error renders as "".
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith inserts a subject, typically a file path, between the
// operation and the error.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
