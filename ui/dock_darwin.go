//go:build darwin
// +build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

// NSApplicationActivationPolicyRegular is a normal, foreground application
// with a Dock icon. NSApplicationActivationPolicyAccessory is a background
// application with no Dock icon.
void setActivationPolicy(long policy) {
    [NSApp setActivationPolicy:policy];
    // Activating commits the policy change and brings the app forward when
    // transforming to a regular app.
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// showDockIcon makes the app a regular app with a Dock icon while a window
// is open.
func showDockIcon() {
	C.setActivationPolicy(0) // NSApplicationActivationPolicyRegular
}

// hideDockIcon returns the app to a background-only tray app.
func hideDockIcon() {
	C.setActivationPolicy(1) // NSApplicationActivationPolicyAccessory
}
