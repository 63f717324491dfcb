package domain

const (
	// CatalogSchemaVersion is the catalog file format this build
	// understands. Files with a different major version are rejected.
	CatalogSchemaVersion = "v1.0.0"

	DefaultMaxRecentTools    = 12
	DefaultRecentToolTTLDays = 30

	PreferenceKeyFavorites   = "favorites"
	PreferenceKeyRecentTools = "recent-tools"

	DefaultLanguage = LangEnglish
)
