// Package constants holds provider names and other fixed identifiers shared across layers.
package constants

// Event publisher providers (pubsub.provider)
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Media store providers (media.provider)
const (
	MediaProviderBlob  = "blob"
	MediaProviderMinio = "minio"
)

// Cache keys and their templates
const (
	CacheKeyPost     = "blog:post:%s"
	CacheKeyPostList = "blog:posts"
)

// MediaFormField is the multipart field carrying post attachments.
const MediaFormField = "media"
