// Package platform sends desktop notifications through the host's native
// notification service.
package platform

// appName identifies dragbox to the notification service.
const appName = "dragbox"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file shown next to the
	// notification where supported.
	IconPath string
	// Timeout is how long the notification stays visible, in milliseconds.
	// Zero uses the platform default.
	Timeout int32
}
