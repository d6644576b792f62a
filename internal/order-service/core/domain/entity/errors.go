package entity

import "errors"

var (
	// ErrOrderNotFound is returned by repositories on a get-by-id miss.
	ErrOrderNotFound = errors.New("order not found")

	// ErrStorageUnavailable classifies infrastructure failures from
	// repository adapters backed by a real datastore. The in-memory
	// adapter never produces it.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrPublishFailed classifies every transport problem raised by a
	// broker adapter (unconnected channel, connection loss, marshal
	// failure). It lets the orchestrator swallow publish failures
	// deliberately instead of by accident.
	ErrPublishFailed = errors.New("publish failed")
)
