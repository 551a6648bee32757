//go:build !release

// Package log wraps the standard logger with a debug level that release
// builds compile out. Development builds log to stderr; release builds
// log to a rotated file (see log_release.go).
package log

import (
	"fmt"
	"log"
	"os"
)

const debugPrefix = "[DEBUG] "

func emit(msg string) {
	log.Output(3, msg)
}

// Print logs its arguments in the manner of fmt.Sprint.
func Print(v ...interface{}) { emit(fmt.Sprint(v...)) }

// Printf logs a formatted message.
func Printf(format string, v ...interface{}) { emit(fmt.Sprintf(format, v...)) }

// Println logs its arguments in the manner of fmt.Sprintln.
func Println(v ...interface{}) { emit(fmt.Sprintln(v...)) }

// Fatal logs its arguments and exits the process.
func Fatal(v ...interface{}) {
	emit(fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf logs a formatted message and exits the process.
func Fatalf(format string, v ...interface{}) {
	emit(fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Fatalln logs its arguments and exits the process.
func Fatalln(v ...interface{}) {
	emit(fmt.Sprintln(v...))
	os.Exit(1)
}

// Debug logs its arguments with a debug prefix.
func Debug(v ...interface{}) { emit(debugPrefix + fmt.Sprint(v...)) }

// Debugf logs a formatted message with a debug prefix.
func Debugf(format string, v ...interface{}) { emit(debugPrefix + fmt.Sprintf(format, v...)) }
