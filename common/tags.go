package common

// Scene metadata properties (STAC item)
const (
	TagCloudCover = "eo:cloud_cover"
	TagPlatform   = "platform"
)
