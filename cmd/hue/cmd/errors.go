package cmd

import (
	"errors"
	"fmt"
	"strings"

	bolt "go.etcd.io/bbolt"
)

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns the string "timeout" when it cannot acquire the file lock
// within the configured deadline.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, bolt.ErrTimeout) || strings.Contains(err.Error(), "timeout")
}

// diagnoseDBLock returns actionable guidance when a bbolt open fails due to
// lock contention. Only one hue process can hold the lexicon store.
func diagnoseDBLock(dbPath string) string {
	return fmt.Sprintf("lexicon store %s is locked by another hue process\n"+
		"  → a `hue watch --lexicon` may be running; stop it first\n"+
		"  → find the process:  ps aux | grep 'hue'\n"+
		"  → then retry your command", dbPath)
}

// DescribeError renders err for the user, expanding lock timeouts into
// guidance.
func DescribeError(err error) string {
	if isDBLockError(err) {
		return err.Error() + "\n" + diagnoseDBLock(projectDB())
	}
	return err.Error()
}
