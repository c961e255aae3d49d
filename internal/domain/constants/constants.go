// Package constants holds configuration values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Pagination defaults used when the configuration leaves them unset.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// DefaultMinPasswordLength applies when auth.minPasswordLength is unset.
const DefaultMinPasswordLength = 8
