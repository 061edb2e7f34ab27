package compose

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/redstack/internal/provisioning"
)

// TestComposeSpecs is the entry point for the Ginkgo specs of this package.
func TestComposeSpecs(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Compose Suite")
}

// recorder keeps every event it observes.
type recorder struct {
	events []provisioning.Event
}

func (r *recorder) Printf(string, ...any) {}

func (r *recorder) Event(e provisioning.Event) { r.events = append(r.events, e) }

func (r *recorder) Progress(string, int, int) {}

func (r *recorder) WithFields(map[string]string) provisioning.Observer { return r }

func (r *recorder) ofType(t provisioning.EventType) []provisioning.Event {
	var out []provisioning.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
