//go:build windows
// +build windows

package main

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/dixieflatline76/RandomBG/config"
	"github.com/dixieflatline76/RandomBG/util/log"
)

var mutex windows.Handle

// acquireLock tries to acquire a single-instance lock (named mutex on Windows).
func acquireLock() (bool, error) {
	namePtr, err := syscall.UTF16PtrFromString(config.AppName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	mutex, err = windows.CreateMutex(nil, false, namePtr)
	if err != nil {
		if windows.GetLastError() == windows.ERROR_ALREADY_EXISTS {
			return false, nil // another instance is running
		}
		return false, errors.New("another instance is already running")
	}

	return true, nil
}

// releaseLock releases the single-instance lock.
func releaseLock() {
	if mutex == 0 {
		return
	}
	if err := windows.ReleaseMutex(mutex); err != nil {
		log.Printf("Failed to release mutex: %v", err)
	}
	if err := windows.CloseHandle(mutex); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
}
