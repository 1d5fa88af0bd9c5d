package layouts

// CalculateTitle builds the document title from the page title and the
// application name. An empty appName falls back to DefaultAppName.
func CalculateTitle(appName, title string) string {
	if appName == "" {
		appName = DefaultAppName
	}
	if title != "" {
		return title + " - " + appName
	}
	return appName
}
