package services

import (
	"fmt"
	"testing"

	"github.com/dmitrijs2005/adatasks/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestNewOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"ok", nil, Outcome{Success: true, Message: MsgTaskAdded}},
		{"domain", common.ErrEmptyTitle, Outcome{Success: false, Message: common.ErrEmptyTitle.Error()}},
		{"storage", fmt.Errorf("save tasks: %w", errDiskFull), Outcome{Success: false, Message: "storage error: save tasks: disk full"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewOutcome(tt.err, MsgTaskAdded))
		})
	}
}

func TestCleanupMessage(t *testing.T) {
	assert.Equal(t, MsgNothingToClean, CleanupMessage(CleanupReport{}))
	assert.Equal(t, "Cleanup removed 2 duplicate and 1 orphan task(s).", CleanupMessage(CleanupReport{Duplicates: 2, Orphans: 1}))
	assert.Equal(t, "3 completed task(s) removed!", RemovedCompletedMessage(3))
}
