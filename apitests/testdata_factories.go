package apitests

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dummyapi/user-api-contract-tests/apidef"
	o "github.com/dummyapi/user-api-contract-tests/framework/opt"
)

var factorySerial int32

// UserFactory produces user creation parameters with unique email addresses.
//
// The remote service enforces email uniqueness across everything in its
// store, including leftovers from earlier runs that were not cleaned up, so
// every address carries a time-based run tag plus a serial that makes it
// unique across the factories of this run.
type UserFactory struct {
	runTag      string
	description string
	counter     int
	lock        sync.Mutex
}

func NewUserFactory(description string) *UserFactory {
	return &UserFactory{
		runTag:      fmt.Sprintf("%d.%d", time.Now().UnixMilli(), atomic.AddInt32(&factorySerial, 1)),
		description: description,
	}
}

func (f *UserFactory) NextUniqueUser() apidef.UserParams {
	f.lock.Lock()
	f.counter++
	n := f.counter
	f.lock.Unlock()

	return apidef.UserParams{
		FirstName: o.Some(fmt.Sprintf("%s %d", f.description, n)),
		LastName:  o.Some("Tester"),
		Email:     o.Some(fmt.Sprintf("jack.%s.%d@example.com", f.runTag, n)),
	}
}

// NonexistentUserID returns a well-formed user id that cannot belong to any
// stored user: the service's ids start with a recent creation timestamp, so
// an id from the epoch is never issued.
func NonexistentUserID() string {
	return "000000010000000000000000"
}
