// Package service provides the tool registry for WardFS providers.
//
// The registry maintains a catalog of service providers and dispatches tool
// invocations to them by tool ID (service.tool).
//
// Components:
//   - Registry: central service catalog
//   - Provider: interface for service implementations
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(filesystemProvider)
//	result, err := registry.Execute(ctx, "filesystem.read", params, appCtx)
package service
