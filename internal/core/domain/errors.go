package domain

import "go.trai.ch/zerr"

var (
	// ErrDirectoryAccess is returned when the inventory directory is missing or unreadable.
	ErrDirectoryAccess = zerr.New("failed to read inventory directory")

	// ErrMetadataUnavailable is returned when the store returns details without the expected structure.
	ErrMetadataUnavailable = zerr.New("app details unavailable")

	// ErrDownloadFailed is returned when the store client could not transfer the artifact.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrStoreRequestFailed is returned when a request to the store cannot be completed.
	ErrStoreRequestFailed = zerr.New("store request failed")

	// ErrStoreResponseParseFailed is returned when a store response body cannot be decoded.
	ErrStoreResponseParseFailed = zerr.New("failed to parse store response")

	// ErrCredentialsRead is returned when the credentials file cannot be read.
	ErrCredentialsRead = zerr.New("failed to read credentials file")

	// ErrCredentialsInvalid is returned when the credentials file does not match the expected layout.
	ErrCredentialsInvalid = zerr.New("invalid credentials file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration value")

	// ErrNoPackageSpecified is returned when the package argument is empty.
	ErrNoPackageSpecified = zerr.New("no package specified")

	// ErrOutputDirCreateFailed is returned when the destination directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrProgramDirUnknown is returned when the directory of the running executable cannot be determined.
	ErrProgramDirUnknown = zerr.New("failed to determine program directory")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrVersionNotNumeric is returned when a local version is not a base-10 integer.
	ErrVersionNotNumeric = zerr.New("local version is not numeric")

	// ErrDestinationInvalid is returned when the artifact destination cannot be resolved.
	ErrDestinationInvalid = zerr.New("failed to resolve destination path")

	// ErrReceiptMarshalFailed is returned when a download receipt cannot be encoded.
	ErrReceiptMarshalFailed = zerr.New("failed to marshal download receipt")

	// ErrReceiptCreateFailed is returned when the receipt directory cannot be created.
	ErrReceiptCreateFailed = zerr.New("failed to create receipt directory")

	// ErrReceiptWriteFailed is returned when a download receipt cannot be written.
	ErrReceiptWriteFailed = zerr.New("failed to write download receipt")
)
