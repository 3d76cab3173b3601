package resolver

import (
	"github.com/TamsinVexley/lsprov/internal/logging"
)

// InstallStatus is a coarse progress signal reported while resolving.
type InstallStatus int

const (
	// StatusCheckingForUpdate is reported before the release lookup.
	StatusCheckingForUpdate InstallStatus = iota
	// StatusDownloading is reported before fetching a release asset.
	StatusDownloading
)

// String returns a human-readable status name.
func (s InstallStatus) String() string {
	switch s {
	case StatusCheckingForUpdate:
		return "checking for update"
	case StatusDownloading:
		return "downloading"
	default:
		return "unknown"
	}
}

// StatusSink receives installation status updates for a server.
// Reports are fire-and-forget; implementations must not block resolution.
type StatusSink interface {
	Report(serverID string, status InstallStatus)
}

// NopSink discards all status reports.
type NopSink struct{}

// Report does nothing.
func (NopSink) Report(serverID string, status InstallStatus) {}

// LogSink forwards status reports to a logger.
type LogSink struct {
	Log logging.Logger
}

// Report logs the status change.
func (s LogSink) Report(serverID string, status InstallStatus) {
	s.Log.Info("installation status", "server", serverID, "status", status.String())
}
