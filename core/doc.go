// Package core contains the business logic for the Zhihu RSS API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Activity, Channel, Entry, Budget)
// - zhihu: Upstream API client and page scrapers
// - stream: Page aggregation, entry normalization and RSS assembly
// - sanitize: HTML fragment cleanup and image proxy rewriting
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from transport concerns
//
// # Usage Example
//
//	import (
//	    "zhihu-rss-api/core/interfaces"
//	    "zhihu-rss-api/core/stream"
//	    "zhihu-rss-api/core/zhihu"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	client := zhihu.NewClient(deps)
//	service := stream.NewService(deps, client, domain.DefaultBudget())
//
//	// Build a feed
//	rss, err := service.UserFeed(ctx, "some-user", stream.UserFeedOptions{})
package core
