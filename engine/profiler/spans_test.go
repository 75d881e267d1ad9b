//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSpeedscopeBalances(t *testing.T) {
	evs := []event{
		{at: 0, frame: 1},                // close whose open was overwritten
		{at: 1000, frame: 0, open: true}, // tick
		{at: 3000, frame: 0},             // tick closed
		{at: 4000, frame: 2, open: true}, // draw, never closed
		{at: 2000, frame: 3, open: true}, // clock went backwards
	}
	doc, err := speedscope(evs, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := doc.Profiles[0].Events
	want := []ssEvent{
		{"O", 1, 0},
		{"C", 3, 0},
		{"O", 4, 2},
		{"O", 4, 3},
		{"C", 4, 3},
		{"C", 4, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("events = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if doc.Profiles[0].EndValue != 4 {
		t.Errorf("end = %d", doc.Profiles[0].EndValue)
	}
}

func TestDump(t *testing.T) {
	Init(64)
	end := Start("frame")
	Start("tick")()
	end()

	path := filepath.Join(t.TempDir(), "capture.json")
	if err := Dump(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc ssFile
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if n := len(doc.Profiles[0].Events); n != 4 {
		t.Errorf("%d events, want 4", n)
	}
}
