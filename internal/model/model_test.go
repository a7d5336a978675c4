package model

import (
	"errors"
	"testing"
	"time"
)

func TestJob_Name(t *testing.T) {
	tests := []struct {
		audioPath string
		want      string
	}{
		{"/music/album/01 Intro.mp3", "01 Intro.mp3"},
		{"song.mp3", "song.mp3"},
		{"/music/nested/deep/Track.MP3", "Track.MP3"},
	}

	for _, tt := range tests {
		t.Run(tt.audioPath, func(t *testing.T) {
			j := Job{AudioPath: tt.audioPath, ArtworkPath: "/music/cover.jpg"}
			if got := j.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_OK(t *testing.T) {
	ok := Result{Job: Job{AudioPath: "a.mp3"}}
	if !ok.OK() {
		t.Error("OK() should return true when Err is nil")
	}

	failed := Result{Job: Job{AudioPath: "b.mp3"}, Err: errors.New("encoder exited with status 1")}
	if failed.OK() {
		t.Error("OK() should return false when Err is set")
	}
}

func TestRunReport_Add(t *testing.T) {
	var report RunReport

	report.Add(Result{Job: Job{AudioPath: "a.mp3"}, Duration: time.Second})
	report.Add(Result{Job: Job{AudioPath: "b.mp3"}, Err: errors.New("boom")})
	report.Add(Result{Job: Job{AudioPath: "c.mp3"}})

	if report.Attempted != 3 {
		t.Errorf("Attempted = %d, want 3", report.Attempted)
	}
	if report.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", report.Succeeded)
	}
	if report.Failed != 1 {
		t.Errorf("Failed = %d, want 1", report.Failed)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("len(Failures) = %d, want 1", len(report.Failures))
	}
	if report.Failures[0].Job.AudioPath != "b.mp3" {
		t.Errorf("Failures[0].Job.AudioPath = %q, want %q", report.Failures[0].Job.AudioPath, "b.mp3")
	}
	if report.AllOK() {
		t.Error("AllOK() should return false after a failed result")
	}
}

func TestRunReport_AllOK_Empty(t *testing.T) {
	var report RunReport
	if !report.AllOK() {
		t.Error("AllOK() should return true for an empty report")
	}
}

func TestRunReport_Summary(t *testing.T) {
	tests := []struct {
		name   string
		report RunReport
		want   string
	}{
		{
			name: "all succeeded",
			report: RunReport{
				Attempted: 3,
				Succeeded: 3,
				Elapsed:   1500 * time.Millisecond,
			},
			want: "applied artwork to 3/3 files in 1.5s",
		},
		{
			name: "with failures",
			report: RunReport{
				Attempted: 5,
				Succeeded: 3,
				Failed:    2,
				Elapsed:   2 * time.Second,
			},
			want: "applied artwork to 3/5 files in 2s (2 failed)",
		},
		{
			name:   "empty run",
			report: RunReport{},
			want:   "applied artwork to 0/0 files in 0s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
