package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // Runtime failure (interrupted run, unexpected I/O error)
	ExitConfigError = 2 // Configuration error (bad config file, missing root)
)
