package admin

import (
	"sync"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
)

// IDAllocator issues list identifiers derived from the clock that are
// strictly increasing and greater than every id present when it was seeded.
type IDAllocator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDAllocator seeds an allocator above the largest id found in doc.
func NewIDAllocator(doc *content.Document) *IDAllocator {
	return &IDAllocator{last: MaxID(doc), now: time.Now}
}

// Next returns a fresh identifier.
func (a *IDAllocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	candidate := a.now().UnixMilli()
	if candidate <= a.last {
		candidate = a.last + 1
	}
	a.last = candidate
	return candidate
}

// MaxID returns the largest list identifier used anywhere in doc.
func MaxID(doc *content.Document) int64 {
	if doc == nil {
		return 0
	}
	var max int64
	bump := func(id int64) {
		if id > max {
			max = id
		}
	}
	for _, p := range doc.Global.GalleryProjects {
		bump(p.ID)
	}
	for _, m := range doc.Global.TeamMembers {
		bump(m.ID)
	}
	for _, p := range doc.Global.TeamPhotos {
		bump(p.ID)
	}
	for _, lang := range content.Languages {
		l := doc.Lang(lang)
		for _, m := range l.TeamMembers {
			bump(m.ID)
		}
		for _, h := range l.WorkingHours {
			bump(h.ID)
		}
	}
	return max
}
