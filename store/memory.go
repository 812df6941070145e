package store

import (
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/util/async"
)

const allSubscribers = -1

// Memory is the in-process document store. It backs solo and local play,
// the websocket gateway and the tests; hosted deployments swap in a remote
// store behind the same interface.
type Memory struct {
	mu      sync.Mutex
	docs    *hashmap.HashMap
	archive *Archive
}

func NewMemory() *Memory {
	return &Memory{docs: hashmap.New()}
}

// SetArchive wires finished games through to the Postgres archive. Nil-safe.
func (m *Memory) SetArchive(archive *Archive) {
	m.archive = archive
}

type delivery struct {
	doc  Document
	only int
}

type memoryDoc struct {
	mu          sync.Mutex
	fields      Document
	subs        map[int]func(Document)
	nextSubID   int
	queue       []delivery
	dispatching bool
}

func (m *Memory) get(id string) *memoryDoc {
	if v, ok := m.docs.Get(id); ok {
		return v.(*memoryDoc)
	}
	return nil
}

func (m *Memory) Get(id string) (Document, error) {
	doc := m.get(id)
	if doc == nil {
		return nil, ErrNotFound
	}
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return clone(doc.fields), nil
}

func (m *Memory) Create(id string, fields Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.get(id) != nil {
		return ErrExists
	}
	m.docs.Set(id, &memoryDoc{
		fields: clone(fields),
		subs:   map[int]func(Document){},
	})
	return nil
}

func (m *Memory) Update(id string, patch Patch) error {
	doc := m.get(id)
	if doc == nil {
		return ErrNotFound
	}
	doc.mu.Lock()
	for field, value := range patch.Set {
		doc.fields[field] = value
	}
	for field, n := range patch.Inc {
		doc.fields[field] = numeric(doc.fields[field]) + n
	}
	snapshot := clone(doc.fields)
	doc.enqueueLocked(delivery{doc: snapshot, only: allSubscribers})
	doc.mu.Unlock()

	if m.archive != nil {
		m.archive.Observe(snapshot)
	}
	return nil
}

func (m *Memory) Subscribe(id string, onChange func(Document)) (func(), error) {
	doc := m.get(id)
	if doc == nil {
		return nil, ErrNotFound
	}
	doc.mu.Lock()
	subID := doc.nextSubID
	doc.nextSubID++
	doc.subs[subID] = onChange
	// Initial push: the subscriber sees the current document before any
	// subsequent commit.
	doc.enqueueLocked(delivery{doc: clone(doc.fields), only: subID})
	doc.mu.Unlock()

	return func() {
		doc.mu.Lock()
		delete(doc.subs, subID)
		doc.mu.Unlock()
	}, nil
}

// enqueueLocked appends a delivery and wakes the document's dispatcher.
// One dispatcher per document keeps pushes in commit order for every
// subscriber; callbacks run without locks held, so they may write back.
func (d *memoryDoc) enqueueLocked(item delivery) {
	d.queue = append(d.queue, item)
	if d.dispatching {
		return
	}
	d.dispatching = true
	async.Async(d.dispatch)
}

func (d *memoryDoc) dispatch() {
	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.dispatching = false
			d.mu.Unlock()
			return
		}
		item := d.queue[0]
		d.queue = d.queue[1:]
		targets := make([]func(Document), 0, len(d.subs))
		if item.only == allSubscribers {
			for _, onChange := range d.subs {
				targets = append(targets, onChange)
			}
		} else if onChange, ok := d.subs[item.only]; ok {
			targets = append(targets, onChange)
		}
		d.mu.Unlock()

		for _, onChange := range targets {
			onChange(item.doc)
		}
	}
}

func numeric(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
