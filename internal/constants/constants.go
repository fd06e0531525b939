package constants

const (
	AppName           = "mosaic"
	DefaultConfigPath = "~/.config/mosaic/mosaic.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// YearViewDays is the number of trailing days shown in the year heatmap,
	// today inclusive.
	YearViewDays = 365

	// MonthGridDays is the fixed size of the month heatmap grid: six full
	// weeks regardless of where the month starts or ends.
	MonthGridDays = 42

	// ExportFilePrefix and ExportFileSuffix form the export filename around
	// the export date: mosaic-data-2024-02-29.json.
	ExportFilePrefix = "mosaic-data-"
	ExportFileSuffix = ".json"

	// Settings defaults
	DefaultLanguage = "en"
	DefaultDarkMode = false
)
