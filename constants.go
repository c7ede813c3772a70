package main

import "time"

// Printer states derived from lpstat output
const (
	StateIdle     PrinterState = "idle"
	StatePrinting PrinterState = "printing"
	StateOffline  PrinterState = "offline"
	StateDisabled PrinterState = "disabled"
	StateUnknown  PrinterState = "unknown"
)

// Print result error codes
const (
	CodeFileNotFound    = "FILE_NOT_FOUND"
	CodePrintFailed     = "PRINT_FAILED"
	CodePrintError      = "PRINT_ERROR"
	CodeTestPrintFailed = "TEST_PRINT_FAILED"
	CodeTestPrintError  = "TEST_PRINT_ERROR"
)

// Default configuration values
const (
	DefaultWebPort       = "5000"
	DefaultWebHost       = "0.0.0.0"
	DefaultDBFileName    = "labelkiosk.db"
	DefaultLabelFileName = "label.zpl"
	DefaultPIN           = "1234"
)

// Well-known printer probed when discovery parses zero entries
const WellKnownPrinterName = "Zebra_GK420d"

// Placeholder entries shown when discovery finds nothing or fails outright.
// Callers must treat these as display-only, never as real printers.
const (
	PlaceholderNoPrinters     = "No printers detected"
	PlaceholderDetectionError = "Error detecting printers"
)

// CUPS job acceptance phrase, e.g. "request id is Zebra_GK420d-42 (1 file(s))"
const jobAcceptedPhrase = "request id is"

// Settings sections
const (
	SectionPrinter  = "printer"
	SectionSecurity = "security"
	SectionLabel    = "label"
	SectionUI       = "ui"
)

// Log store parameters
const (
	LogFileName      = "kiosk.log"
	LogArchivePrefix = "kiosk-"
	MaxLogFileSize   = 10 * 1024 * 1024
	LogRetention     = 7 * 24 * time.Hour
)

// AppVersion is reported by the version endpoint and the update checker.
const AppVersion = "1.3.0"
