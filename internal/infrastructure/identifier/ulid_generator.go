package identifier

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"firex_service/internal/usecase/interfaces"

	"github.com/oklog/ulid/v2"
)

const requestIDPrefix = "SR-"

// ULIDRequestIDGenerator produces "SR-<ULID>" business identifiers.
//
// A ULID carries millisecond timestamp plus 80 bits of entropy, so ids stay
// lexically sortable by creation time while two requests created in the same
// clock tick cannot collide. The monotonic reader additionally keeps ids
// strictly increasing within a process.

type ULIDRequestIDGenerator struct {
	mu      sync.Mutex
	entropy io.Reader
}

var _ interfaces.IRequestIDGenerator = (*ULIDRequestIDGenerator)(nil)

func NewULIDRequestIDGenerator() *ULIDRequestIDGenerator {
	return &ULIDRequestIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (g *ULIDRequestIDGenerator) NewRequestID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return requestIDPrefix + ulid.MustNew(ulid.Timestamp(time.Now().UTC()), g.entropy).String()
}
