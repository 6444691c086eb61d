package bootstrap

// Log messages for startup
const (
	LogMsgStarting            = "Starting daily puzzle service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgMigrationsSkipped   = "Automatic migrations disabled"
	LogMsgWorkerDisabled      = "Daily puzzle worker disabled"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Daily puzzle worker shutdown failed"
	LogMsgClosingDatabase      = "Closing database pool"
)
