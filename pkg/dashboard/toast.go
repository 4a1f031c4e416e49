package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a toast notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultToastDuration applies when a caller passes a zero duration.
const DefaultToastDuration = 3 * time.Second

// Toast is one active notification.
type Toast struct {
	ID       string
	Message  string
	Severity Severity
	Duration time.Duration
}

// ToastRelay holds transient notifications and expires them on a timer.
// It is injected into whatever needs to raise a toast; there is no package
// level instance.
type ToastRelay struct {
	mu     sync.Mutex
	order  []string
	active map[string]*toastEntry
}

type toastEntry struct {
	toast Toast
	timer *time.Timer
}

// NewToastRelay builds an empty relay.
func NewToastRelay() *ToastRelay {
	return &ToastRelay{active: make(map[string]*toastEntry)}
}

// Notify queues a toast and returns its id. A zero duration falls back to
// DefaultToastDuration; the toast dismisses itself when the duration elapses.
func (r *ToastRelay) Notify(message string, severity Severity, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultToastDuration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	entry := &toastEntry{
		toast: Toast{ID: id, Message: message, Severity: severity, Duration: duration},
	}
	entry.timer = time.AfterFunc(duration, func() { r.Dismiss(id) })
	r.active[id] = entry
	r.order = append(r.order, id)
	return id
}

// Dismiss removes a toast before its timer fires. Dismissing an unknown or
// already-expired id is a no-op.
func (r *ToastRelay) Dismiss(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.active[id]
	if !ok {
		return
	}
	entry.timer.Stop()
	delete(r.active, id)
	for i, queued := range r.order {
		if queued == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Active returns the live toasts in the order they were raised.
func (r *ToastRelay) Active() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Toast, 0, len(r.order))
	for _, id := range r.order {
		if entry, ok := r.active[id]; ok {
			out = append(out, entry.toast)
		}
	}
	return out
}
