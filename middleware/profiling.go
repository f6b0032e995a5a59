package middleware

import (
	"github.com/grafana/pyroscope-go"

	"github.com/hnh-zeal/petopia-frontend-sub000/config"
)

var profiler *pyroscope.Profiler

// InitProfiling starts Pyroscope profiling with the detected service name.
func InitProfiling(cfg *config.Config) error {
	serviceName, namespace := detectServiceInfo()
	if serviceName == unknownService {
		serviceName = cfg.Profiling.ServiceName
	}

	var err error
	profiler, err = pyroscope.Start(pyroscope.Config{
		ApplicationName: serviceName,
		ServerAddress:   cfg.Profiling.Endpoint,
		Tags: map[string]string{
			"service":   serviceName,
			"namespace": namespace,
			"version":   cfg.Service.Version,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	return err
}

// StopProfiling stops Pyroscope profiling
func StopProfiling() {
	if profiler != nil {
		_ = profiler.Stop()
	}
}
