package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrSubscriberPanic  = fmt.Errorf("subscriber panic")
	ErrAlreadyConnected = fmt.Errorf("player already connected")
	ErrNotConnected     = fmt.Errorf("player not connected")
	ErrFetchFailed      = fmt.Errorf("metadata fetch failed")
	ErrDrainTimeout     = fmt.Errorf("leave drain timed out")
)
