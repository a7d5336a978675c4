// Package config provides configuration management for the artwork applier.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Encoder resolved from PATH (ffmpeg, then avconv)
//	// One worker per CPU in parallel mode
//	// Artwork probed as cover.* then folder.*
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.Jobs = 4
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Encoder binary override
//   - Parallel worker count
//   - Artwork file names and probe order
//   - Artwork resizing before embedding
package config
