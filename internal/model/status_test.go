package model

import "testing"

func TestJobStatus_IsBusy(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusIdle, false},
		{JobStatusProbing, true},
		{JobStatusDownloading, true},
		{JobStatusCompleted, false},
		{JobStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsBusy()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsBusy() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusIdle, false},
		{JobStatusProbing, false},
		{JobStatusDownloading, false},
		{JobStatusCompleted, true},
		{JobStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_String(t *testing.T) {
	status := JobStatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("JobStatus.String() = %s, expected %s", result, expected)
	}
}
