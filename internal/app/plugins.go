package app

import (
	"fmt"

	"github.com/bethropolis/tide-astyle/internal/host"
	"github.com/bethropolis/tide-astyle/internal/logger"
	"github.com/bethropolis/tide-astyle/internal/plugin"
)

// registerPlugins registers and initializes plugins on the session.
func registerPlugins(session *host.Session, plugins ...plugin.Plugin) error {
	for _, p := range plugins {
		logger.Debugf("Registering plugin: %s", p.Name())
	}
	if err := session.Start(plugins...); err != nil {
		return fmt.Errorf("failed to start plugins: %w", err)
	}
	return nil
}
