//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

const Enabled = true

const defaultCapacity = 1 << 16

type event struct {
	at    int64 // unix nanoseconds
	frame int
	open  bool
}

// ring keeps the newest events; older ones are overwritten.
type ring struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	evs   []event
}

func (r *ring) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, capacity)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *ring) push(e event) {
	i := r.next.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *ring) snapshot() []event {
	n := r.next.Load()
	var first uint64
	if n > r.size {
		first = n - r.size
	}
	out := make([]event, 0, n-first)
	for i := first; i < n; i++ {
		out = append(out, r.evs[i%r.size])
	}
	return out
}

var (
	events ring

	namesMu sync.Mutex
	names   []string
	ids     = map[string]int{}
)

// Init enables recording with room for capacity events.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	events.init(capacity)
}

// Start opens a span and returns the function that closes it.
func Start(name string) func() {
	if !events.ready.Load() {
		return func() {}
	}
	id := intern(name)
	begin := time.Now().UnixNano()
	events.push(event{at: begin, frame: id, open: true})
	return func() {
		end := max(time.Now().UnixNano(), begin)
		events.push(event{at: end, frame: id})
	}
}

func intern(name string) int {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := ids[name]; ok {
		return id
	}
	id := len(names)
	ids[name] = id
	names = append(names, name)
	return id
}

// Dump writes the recorded spans to path as a speedscope profile.
func Dump(path string) error {
	namesMu.Lock()
	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	namesMu.Unlock()

	doc, err := speedscope(events.snapshot(), frames)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	if err := json.NewEncoder(f).Encode(doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // microseconds since the first event
	Frame int    `json:"frame"`
}

// speedscope balances the event stream: closes without a matching open are
// dropped (their open fell out of the ring) and spans still open at the end
// are closed at the last timestamp.
func speedscope(evs []event, frames []ssFrame) (*ssFile, error) {
	if len(evs) == 0 {
		return nil, errors.New("profiler: no events recorded")
	}
	base := evs[0].at
	out := make([]ssEvent, 0, len(evs))
	var stack []int
	var last int64

	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			stack = append(stack, e.frame)
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}

	return &ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "sprig frame loop",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "sprig/profiler",
		Name:     "sprig capture",
	}, nil
}
