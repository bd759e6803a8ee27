package services

import (
	"fmt"

	"github.com/dmitrijs2005/adatasks/internal/common"
)

// Success messages shown by the front end.
const (
	MsgRegistered     = "User registered successfully!"
	MsgLoggedIn       = "Logged in successfully!"
	MsgLoggedOut      = "Logged out."
	MsgRecoverySent   = "Recovery email sent! Check your inbox."
	MsgListCreated    = "List created successfully!"
	MsgListRemoved    = "List removed successfully!"
	MsgListSelected   = "List selected."
	MsgTaskAdded      = "Task added successfully!"
	MsgTaskToggled    = "Task status updated!"
	MsgTaskRemoved    = "Task removed successfully!"
	MsgNothingToClean = "No inconsistent data found."
)

// Outcome is the {success, message} shape every user action resolves to.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewOutcome turns the error of an operation into an Outcome, using okMessage
// when err is nil. Storage failures are reported with a prefix so they stand
// out from validation errors.
func NewOutcome(err error, okMessage string) Outcome {
	switch {
	case err == nil:
		return Outcome{Success: true, Message: okMessage}
	case common.IsDomain(err):
		return Outcome{Success: false, Message: err.Error()}
	default:
		return Outcome{Success: false, Message: "storage error: " + err.Error()}
	}
}

// RemovedCompletedMessage is the success message of RemoveCompletedTasks.
func RemovedCompletedMessage(n int) string {
	return fmt.Sprintf("%d completed task(s) removed!", n)
}

// CleanupMessage describes a CleanupReport.
func CleanupMessage(r CleanupReport) string {
	if !r.Changed() {
		return MsgNothingToClean
	}
	return fmt.Sprintf("Cleanup removed %d duplicate and %d orphan task(s).", r.Duplicates, r.Orphans)
}
