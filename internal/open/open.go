// Package open launches the platform default viewer for a generated file.
package open

import (
	"ritualform/internal/logger"
)

// File opens path with the operating system's associated application.
// The viewer is started detached; a failure to launch is reported but
// never blocks the caller.
func File(path string) error {
	cmd := command(path)
	if err := cmd.Start(); err != nil {
		logger.Warn("failed to open file with system viewer",
			logger.String("path", path),
			logger.Err(err),
		)
		return err
	}
	logger.Debug("opened file with system viewer", logger.String("path", path))
	return nil
}
