// Package logger provides structured logging for the video player.
//
// Features:
//   - Levels TRACE, DEBUG, INFO, WARN, ERROR
//   - Per-component enable switches
//   - Text, JSON and color output
//   - Configuration from a JSON file or VIDPLAYER_LOG_* environment variables
//
// Usage:
//
//	log := logger.WithComponent(logger.ComponentPlayback)
//	log.Debug("slot changed", logger.Fields{"video_id": "cat1", "state": "playing"})
//
//	config := logger.DefaultConfig()
//	config.Level = logger.DEBUG
//	config.Components[logger.ComponentPlayback] = true
//	logger.SetGlobalLogger(logger.New(config))
//
// Logs go to stderr by default so they never mix with command output on stdout.
package logger
