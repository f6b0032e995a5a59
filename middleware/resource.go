package middleware

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// unknownService is the default service name when detection fails
const unknownService = "unknown-service"

// detectServiceInfo resolves the service name and namespace from, in order:
// OTEL_SERVICE_NAME, SERVICE_NAME, then the unknownService fallback.
// The namespace comes from OTEL_RESOURCE_ATTRIBUTES or POD_NAMESPACE.
func detectServiceInfo() (serviceName, namespace string) {
	serviceName = os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = os.Getenv("SERVICE_NAME")
	}
	if serviceName == "" {
		serviceName = unknownService
	}

	for _, attr := range strings.Split(os.Getenv("OTEL_RESOURCE_ATTRIBUTES"), ",") {
		if k, v, ok := strings.Cut(attr, "="); ok && k == "service.namespace" {
			return serviceName, v
		}
	}
	if ns := os.Getenv("POD_NAMESPACE"); ns != "" {
		return serviceName, ns
	}
	return serviceName, "default"
}

// CreateResource creates an OpenTelemetry resource describing the console process.
func CreateResource(ctx context.Context, version string) (*resource.Resource, error) {
	serviceName, namespace := detectServiceInfo()

	res, err := resource.New(
		ctx,
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceNamespaceKey.String(namespace),
			semconv.ServiceVersionKey.String(version),
		),
	)
	if err != nil {
		return resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceNamespaceKey.String(namespace),
		), fmt.Errorf("resource detection partial failure (using fallback): %w", err)
	}
	return res, nil
}

// GetServiceName extracts service name from a resource
func GetServiceName(res *resource.Resource) string {
	for _, attr := range res.Attributes() {
		if attr.Key == semconv.ServiceNameKey {
			return attr.Value.AsString()
		}
	}
	return unknownService
}
