package domain

const (
	// ArtifactExt is the extension of downloaded artifacts.
	ArtifactExt = ".apk"

	// VersionSeparator separates the package name from the version in artifact filenames.
	VersionSeparator = "-"

	// DefaultInventoryDir is the directory scanned for previously downloaded artifacts.
	DefaultInventoryDir = "/data/tools/nginx/html/apk"

	// DefaultCredentialsPath is the credentials file used when none is given.
	DefaultCredentialsPath = "credentials.json"

	// DefaultOutDir is the output location used when none is given. It is resolved
	// against the program directory.
	DefaultOutDir = "Downloads"

	// ReceiptDirName is the directory, inside the output location, receipts are written to.
	ReceiptDirName = ".receipts"

	// DefaultConfigFileName is the name of the optional configuration file.
	DefaultConfigFileName = "apkfetch.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
