// Package constants holds values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// HeaderAPIKey carries the client API key.
const HeaderAPIKey = "X-Api-Key"

// DefaultUpcomingEventsLimit is used when a caller does not pass a limit.
const DefaultUpcomingEventsLimit = 10
