package sqlite

// Storage keys. The names are part of the on-disk format; renaming one
// orphans existing data.
const (
	keyHealthData      = "biosync_health_data"
	keyTimeline        = "biosync_timeline"
	keyTimelineUpdated = "biosync_timeline_last_updated"
	keyTheme           = "biosync_theme"
)
