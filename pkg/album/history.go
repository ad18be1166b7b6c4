package album

import (
	"time"

	"github.com/samber/lo"
)

func NewHistory() *History {
	return &History{max: 3}
}

type History struct {
	max   int
	items []*HistoryLog
}

type HistoryLog struct {
	Name string
	At   time.Time
}

func (h *History) push(item *HistoryLog) {
	h.items = append(h.items, item)
	if len(h.items) > h.max {
		h.items = h.items[1:]
	}
}

func (h *History) Logs() []*HistoryLog {
	return h.items
}

// Names lists the recently shown files, newest last.
func (h *History) Names() []string {
	return lo.Map(h.items, func(item *HistoryLog, _ int) string {
		return item.Name
	})
}

func (h *History) Add(name string) {
	h.push(&HistoryLog{Name: name, At: time.Now()})
}
