package main

// Exit codes returned by zotref commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (runtime failure, load failure)
	ExitConfigError = 2 // Configuration error (database not found, bad config)
	ExitDataError   = 3 // Data error (unknown collection, unknown key)
)
