// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider selectors.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
