package platform

import (
	"net/http"
	"time"

	"adfleet/internal/config/configs"
	"adfleet/internal/core/domain"
	"adfleet/internal/core/port"
)

// NewAdapters builds one adapter per supported platform. Platforms marked
// simulated in cfg get a SimulatedAdapter, the rest a RESTAdapter sharing a
// client bounded by timeout.
func NewAdapters(cfg configs.Platforms, timeout time.Duration) []port.PlatformAdapter {
	client := &http.Client{Timeout: timeout}
	profiles := Profiles()
	settings := cfg.ByName()

	adapters := make([]port.PlatformAdapter, 0, len(domain.Platforms))
	for _, p := range domain.Platforms {
		s := settings[string(p)]
		if s.Simulated {
			adapters = append(adapters, NewSimulatedAdapter(p))
			continue
		}
		adapters = append(adapters, NewRESTAdapter(profiles[p], s, client))
	}
	return adapters
}
