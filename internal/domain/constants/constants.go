// Package constants holds shared configuration constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// NotifierProviderWebhook selects the HTTP webhook notifier.
	NotifierProviderWebhook = "webhook"
	// NotifierProviderLog selects the log-only notifier.
	NotifierProviderLog = "log"
)
