package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/internal/storage"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Text: "A", Completed: false},
		{ID: 2, Text: "B", Completed: true},
		{ID: 3, Text: "C", Completed: false, DueDate: "2020-01-01"},
		{ID: 4, Text: "D", Completed: true, DueDate: "2020-01-01"},
	}
}

func TestVisibleTasks(t *testing.T) {
	tasks := sampleTasks()
	tests := []struct {
		filter Filter
		want   []int64
	}{
		{FilterAll, []int64{1, 2, 3, 4}},
		{FilterActive, []int64{1, 3}},
		{FilterCompleted, []int64{2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			var got []int64
			for _, task := range VisibleTasks(tasks, tt.filter) {
				got = append(got, task.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActiveAndCompletedPartitionAll(t *testing.T) {
	tasks := sampleTasks()
	seen := map[int64]int{}
	for _, task := range VisibleTasks(tasks, FilterActive) {
		seen[task.ID]++
	}
	for _, task := range VisibleTasks(tasks, FilterCompleted) {
		seen[task.ID]++
	}
	for _, task := range VisibleTasks(tasks, FilterAll) {
		assert.Equal(t, 1, seen[task.ID], "task %d across active+completed", task.ID)
	}
	assert.Len(t, seen, len(tasks))
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"all", FilterAll, false},
		{"", FilterAll, false},
		{"Active", FilterActive, false},
		{" completed ", FilterCompleted, false},
		{"done", FilterAll, true},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFilter, "ParseFilter(%q)", tt.in)
		} else {
			assert.NoError(t, err, "ParseFilter(%q)", tt.in)
		}
		assert.Equal(t, tt.want, got, "ParseFilter(%q)", tt.in)
	}
}

func TestFilterNextCycles(t *testing.T) {
	f := FilterAll
	var seq []string
	for i := 0; i < 4; i++ {
		f = f.Next()
		seq = append(seq, f.String())
	}
	assert.Equal(t, []string{"active", "completed", "all", "active"}, seq)
}

func TestCountsProgress(t *testing.T) {
	_, ok := CountTasks(nil).Progress()
	assert.False(t, ok, "progress must be undefined for an empty list")

	c := CountTasks(sampleTasks())
	assert.Equal(t, Counts{Completed: 2, Total: 4}, c)
	ratio, ok := c.Progress()
	assert.True(t, ok)
	assert.Equal(t, 0.5, ratio)
}

func TestBuildView(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	var session EditSession
	session.Start(Task{ID: 3, Text: "C"})

	v := BuildView(sampleTasks(), FilterAll, &session, now)
	require.Len(t, v.Rows, 4)
	assert.Empty(t, v.EmptyMessage)
	assert.True(t, v.Rows[2].Editing)
	assert.False(t, v.Rows[0].Editing)
	assert.True(t, v.Rows[2].Overdue, "incomplete past-due task should be overdue")
	assert.False(t, v.Rows[3].Overdue, "completed tasks are never shown as overdue")
	assert.Equal(t, "Jan 1, 2020", v.Rows[2].DueLabel)

	ratio, ok := v.Progress()
	assert.True(t, ok)
	assert.Equal(t, 0.5, ratio)
}

func TestBuildViewEmptyMessages(t *testing.T) {
	now := time.Now()
	onlyActive := []Task{{ID: 1, Text: "A"}}
	tests := []struct {
		tasks  []Task
		filter Filter
		want   string
	}{
		{nil, FilterAll, "You don't have any tasks yet. Add one above!"},
		{[]Task{{ID: 1, Text: "A", Completed: true}}, FilterActive, "No active tasks. Great job!"},
		{onlyActive, FilterCompleted, "No completed tasks yet. Complete some tasks!"},
		{onlyActive, FilterAll, ""},
	}
	for _, tt := range tests {
		v := BuildView(tt.tasks, tt.filter, nil, now)
		assert.Equal(t, tt.want, v.EmptyMessage, "filter %s", tt.filter)
	}
}

func TestScenarioToggleThenFilter(t *testing.T) {
	s := openTestStore(t, storage.NewMemory(0))
	a, _, _ := s.Add("A", "", "")
	s.Toggle(a.ID)

	assert.Empty(t, VisibleTasks(s.Tasks(), FilterActive))
	got := VisibleTasks(s.Tasks(), FilterCompleted)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
}
