package interfaces

// IRequestIDGenerator produces the human-facing business identifier assigned
// to a service request at creation ("SR-<token>").
//
// Implementations must keep collision probability negligible under concurrent
// creation; a bare wall-clock timestamp does not qualify.
type IRequestIDGenerator interface {
	NewRequestID() string
}
