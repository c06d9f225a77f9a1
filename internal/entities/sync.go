package entities

import (
	"time"
)

// SyncStep reports what a single reconciliation step did.
type SyncStep struct {
	Name     string   `json:"name"`
	Checked  int      `json:"checked"`
	Written  int      `json:"written"`
	Failed   int      `json:"failed"`
	Skipped  bool     `json:"skipped,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

type SyncReport struct {
	StartedAt  time.Time     `json:"startedAt"`
	Duration   time.Duration `json:"duration"`
	Restore    SyncStep      `json:"restore"`
	Expire     SyncStep      `json:"expire"`
	FirstLogin SyncStep      `json:"firstLogin"`
}

// Writes returns the number of device writes issued by the run.
func (r SyncReport) Writes() int {
	return r.Restore.Written + r.Expire.Written + r.FirstLogin.Written
}

func (r SyncReport) Failures() int {
	return r.Restore.Failed + r.Expire.Failed + r.FirstLogin.Failed
}

// Fail records a per-entity failure. The step keeps going.
func (s *SyncStep) Fail(err error) {
	s.Failed++
	s.Messages = append(s.Messages, err.Error())
}
