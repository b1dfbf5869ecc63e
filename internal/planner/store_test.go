package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flyermap/planner/internal/planner"
)

func TestStore_PutAndGet(t *testing.T) {
	s := planner.NewStore()
	job := &planner.Job{JobID: "job_abc"}

	s.Put(job)

	got, ok := s.Get("job_abc")
	assert.True(t, ok)
	assert.Same(t, job, got)
}

func TestStore_GetMissing(t *testing.T) {
	s := planner.NewStore()

	_, ok := s.Get("nope")
	assert.False(t, ok)
}
