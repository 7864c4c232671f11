// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Auth exchanges the credential pair for an app access token
	Auth AuthClient

	// Platform looks up channels and videos
	Platform PlatformClient

	// Logger provides structured logging
	Logger Logger
}
