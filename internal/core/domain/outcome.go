package domain

// Outcome is the result of a single fetch run.
type Outcome int

const (
	// OutcomeDownloaded means a newer artifact was saved.
	OutcomeDownloaded Outcome = iota
	// OutcomeSkippedUpToDate means the inventory already holds the remote version.
	OutcomeSkippedUpToDate
	// OutcomeLookupFailed means the store did not return usable details.
	OutcomeLookupFailed
	// OutcomeDownloadFailed means the store client failed to transfer the artifact.
	OutcomeDownloadFailed
)

// OutcomeAborted means the run stopped on a fatal error before reaching a decision.
const OutcomeAborted Outcome = -1

// ExitCodeFatal is the process exit code for errors that abort the run.
const ExitCodeFatal = 1

func (o Outcome) String() string {
	switch o {
	case OutcomeDownloaded:
		return "DOWNLOADED"
	case OutcomeSkippedUpToDate:
		return "SKIPPED_UP_TO_DATE"
	case OutcomeLookupFailed:
		return "LOOKUP_FAILED"
	case OutcomeDownloadFailed:
		return "DOWNLOAD_FAILED"
	case OutcomeAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the outcome to a distinct process exit code.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeDownloaded:
		return 0
	case OutcomeSkippedUpToDate:
		return 2
	case OutcomeLookupFailed:
		return 3
	case OutcomeDownloadFailed:
		return 4
	default:
		return ExitCodeFatal
	}
}
