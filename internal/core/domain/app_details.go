package domain

// AppDetails holds the metadata the store reports for a package.
type AppDetails struct {
	PackageName string
	Title       string
	Creator     string
	VersionCode int64
}
