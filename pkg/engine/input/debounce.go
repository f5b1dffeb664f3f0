package input

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Debouncer turns a raw event stream into clean press/release edges.
//
// A press of a code that is already held is dropped, as is a release of a
// code that is not held. Devices that never report releases (terminals) keep
// re-sending the press while a key is held and call Expire once per frame; a
// held code that has not been seen for longer than the hold timeout is
// released.
type Debouncer struct {
	held     mapset.Set[string]
	lastSeen map[string]time.Time
	devices  map[string]Device
	timeout  time.Duration
}

// NewDebouncer creates a debouncer. A zero timeout disables Expire.
func NewDebouncer(holdTimeout time.Duration) *Debouncer {
	return &Debouncer{
		held:     mapset.New[string](),
		lastSeen: make(map[string]time.Time),
		devices:  make(map[string]Device),
		timeout:  holdTimeout,
	}
}

// Feed filters one raw event. ok is false when the event was dropped.
func (d *Debouncer) Feed(raw RawInput) (ev DebouncedInput, ok bool) {
	switch raw.Edge {
	case EdgePress:
		d.lastSeen[raw.Code] = raw.Timestamp
		if d.held.Has(raw.Code) {
			return DebouncedInput{}, false
		}
		d.held.Put(raw.Code)
		d.devices[raw.Code] = raw.Device
	case EdgeRelease:
		if !d.held.Has(raw.Code) {
			return DebouncedInput{}, false
		}
		d.forget(raw.Code)
	}
	return NewDebouncedInput(raw), true
}

// Expire synthesizes releases for held codes not seen since now-timeout.
// Released codes are returned in sorted order.
func (d *Debouncer) Expire(now time.Time) []DebouncedInput {
	if d.timeout <= 0 {
		return nil
	}
	var out []DebouncedInput
	d.held.Each(func(code string) {
		if now.Sub(d.lastSeen[code]) > d.timeout {
			out = append(out, DebouncedInput{Device: d.devices[code], Code: code, Edge: EdgeRelease})
		}
	})
	for _, ev := range out {
		d.forget(ev.Code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Held reports whether a code is currently held down.
func (d *Debouncer) Held(code string) bool {
	return d.held.Has(code)
}

// HeldCount returns the number of codes currently held down.
func (d *Debouncer) HeldCount() int {
	return d.held.Size()
}

func (d *Debouncer) forget(code string) {
	d.held.Remove(code)
	delete(d.lastSeen, code)
	delete(d.devices, code)
}

// DropExcept releases every held code other than keep and returns the
// releases in sorted order. Terminals use it when a new key arrives: the
// previous key must already have been let go.
func (d *Debouncer) DropExcept(keep string) []DebouncedInput {
	var out []DebouncedInput
	d.held.Each(func(code string) {
		if code != keep {
			out = append(out, DebouncedInput{Device: d.devices[code], Code: code, Edge: EdgeRelease})
		}
	})
	for _, ev := range out {
		d.forget(ev.Code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
