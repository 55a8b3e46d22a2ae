package model

// JobStatus represents the state of the single worker job slot.
type JobStatus string

const (
	// JobStatusIdle means no job is in flight.
	JobStatusIdle JobStatus = "Idle"

	// JobStatusProbing means a format probe is running.
	JobStatusProbing JobStatus = "Probing"

	// JobStatusDownloading means a download is running.
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusCompleted means the last job finished successfully.
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the last job failed.
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsBusy returns true while a job occupies the worker slot.
func (js JobStatus) IsBusy() bool {
	return js == JobStatusProbing || js == JobStatusDownloading
}

// IsFinished returns true for terminal states of the last job.
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusError
}
