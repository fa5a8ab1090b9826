package constants

// File names used by pulse for state persistence.
const (
	// StoreFileName is the JSON document holding the project registry and
	// the ongoing-session pointer.
	StoreFileName = "store.json"

	// IndexFileName is the JSON document holding a secondary index. Both the
	// task and session index live in a file of this name inside their
	// respective directories.
	IndexFileName = "index.json"

	// ReservedConfigFileName is an empty, reserved configuration document
	// kept for layout compatibility. Runtime configuration lives in
	// GlobalConfigName.
	ReservedConfigFileName = "config.json"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global pulse configuration file.
	// This file is located in the pulse home directory.
	GlobalConfigName = "config.yaml"
)

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.pulse/logs/pulse.log
	CLILogFileName = "pulse.log"
)
