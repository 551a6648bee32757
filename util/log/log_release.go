//go:build release

package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dixieflatline76/RandomBG/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const debugPrefix = "[DEBUG] "

func init() {
	path, err := logFilePath()
	if err != nil {
		log.Fatalf("Failed to resolve log path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	})
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// logFilePath places the log under the user cache dir on Windows and a
// dot directory in the home dir elsewhere.
func logFilePath() (string, error) {
	if runtime.GOOS == "windows" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cache, config.LogWinSubDir, config.AppName+config.LogExt), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, config.LogSubDir, config.AppName+config.LogExt), nil
}

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

// Debug is compiled out of release builds.
func Debug(v ...interface{}) {}

// Debugf is compiled out of release builds.
func Debugf(format string, v ...interface{}) {}
