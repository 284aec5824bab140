// Package logger provides the leveled logging used throughout IconRestore.
// Messages go to stdout by default; an optional file sink can be added, in
// which case messages are written to both. Silent mode suppresses everything
// below Warn on stdout while still writing the file.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	logFile     string
	logDest     = log.New(os.Stdout, "", log.Ldate|log.Ltime)
	logFileDest *log.Logger
	silence     bool
)

// SetSilent suppresses Debug and Info output on stdout. Warnings and errors
// always print; the file sink, if any, receives everything regardless.
func SetSilent(isSilent bool) {
	silence = isSilent
}

func logPrint(level string, quiet bool, format string, values ...any) {
	message := "[" + level + "] " + format
	if len(values) > 0 {
		message = "[" + level + "] " + fmt.Sprintf(format, values...)
	}

	if !quiet || !silence {
		logDest.Println(message)
	}
	if logFileDest != nil {
		logFileDest.Println(message)
	}
}

// Debug logs detail useful when diagnosing a failing restore.
func Debug(format string, values ...any) {
	logPrint("Debug", true, format, values...)
}

// Info logs progress messages.
func Info(format string, values ...any) {
	logPrint("Info", true, format, values...)
}

// Warn logs something unexpected that did not stop the run.
func Warn(format string, values ...any) {
	logPrint("Warn", false, format, values...)
}

// Error logs an error. It does not terminate the process: a failed restore
// is local to one bundle and the batch continues.
func Error(err error) {
	logPrint("Error", false, err.Error())
}

// SetLogFile enables the file sink, creating <name>_YYYY-MM-DD_HH-MM-SS.log
// under dir (or the current directory when dir is empty). The file is opened
// in append mode.
func SetLogFile(name string, dir string) error {
	fileName := fmt.Sprintf("%s_%s.log", name, time.Now().Format("2006-01-02_15-04-05"))

	filePath := fileName
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %v", err)
		}
		filePath = filepath.Join(dir, fileName)
	}

	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	logFile = filePath
	logFileDest = log.New(file, "", log.Ldate|log.Ltime)
	return nil
}

// GetLogFilePath returns the active log file path, empty if none is set.
func GetLogFilePath() string {
	return logFile
}
