// Package broker is the in-memory topic log the gateway fronts when no
// external system is wired in. Offsets are contiguous per topic and survive
// retention trimming: trimmed records leave a floor below which fetches fail.
package broker

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var (
	ErrTopicNotFound    = errors.New("topic not found")
	ErrTopicExists      = errors.New("topic already exists")
	ErrOffsetOutOfRange = errors.New("offset out of range")
)

type Record struct {
	Offset    int64
	Key       string
	Value     string
	Timestamp time.Time
}

// NewRecord is a record as submitted by a producer, before the broker assigns
// an offset and timestamp.
type NewRecord struct {
	Key   string
	Value string
}

const subscriberBuffer = 64

type topicLog struct {
	retention  int
	records    []Record
	nextOffset int64
	subs       map[int64]chan Record
}

func (t *topicLog) floor() int64 {
	return t.nextOffset - int64(len(t.records))
}

type Broker struct {
	mu        sync.RWMutex
	topics    map[string]*topicLog
	nextSubID int64
}

func New() *Broker {
	return &Broker{
		topics: make(map[string]*topicLog),
	}
}

// Subscribe registers a fan-out channel for records produced to the topic
// from now on. The broker never blocks on a subscriber: records the channel
// cannot take are dropped from the stream (they stay in the log). The
// returned cancel is idempotent and closes the channel.
func (b *Broker) Subscribe(topic string) (<-chan Record, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[topic]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrTopicNotFound, topic)
	}

	id := b.nextSubID
	b.nextSubID++

	ch := make(chan Record, subscriberBuffer)
	t.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		t, ok := b.topics[topic]
		if !ok {
			return
		}
		if sub, ok := t.subs[id]; ok {
			delete(t.subs, id)
			close(sub)
		}
	}
	return ch, cancel, nil
}

func (b *Broker) Create(name string, retention int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.topics[name]; ok {
		return fmt.Errorf("%w: %q", ErrTopicExists, name)
	}
	b.topics[name] = &topicLog{
		retention: retention,
		subs:      make(map[int64]chan Record),
	}
	return nil
}

func (b *Broker) Delete(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrTopicNotFound, name)
	}
	for _, sub := range t.subs {
		close(sub)
	}
	delete(b.topics, name)
	return nil
}

func (b *Broker) Exists(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.topics[name]
	return ok
}

func (b *Broker) Topics() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.topics))
	for name := range b.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Produce appends recs to the topic and returns the assigned offsets in
// submission order.
func (b *Broker) Produce(topic string, recs []NewRecord) ([]int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTopicNotFound, topic)
	}

	now := time.Now()
	offsets := make([]int64, 0, len(recs))
	for _, rec := range recs {
		stored := Record{
			Offset:    t.nextOffset,
			Key:       rec.Key,
			Value:     rec.Value,
			Timestamp: now,
		}
		t.records = append(t.records, stored)
		offsets = append(offsets, t.nextOffset)
		t.nextOffset++

		for _, sub := range t.subs {
			select {
			case sub <- stored:
			default:
				subscriberDropped.Inc()
			}
		}
	}

	if t.retention > 0 && len(t.records) > t.retention {
		t.records = t.records[len(t.records)-t.retention:]
	}

	recordsProduced.WithLabelValues(topic).Add(float64(len(recs)))
	return offsets, nil
}

// Fetch returns up to max records starting at offset. An offset at or past
// the log tail yields an empty set; an offset below the retained floor is an
// error. max <= 0 means no limit.
func (b *Broker) Fetch(topic string, offset int64, max int) ([]Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	t, ok := b.topics[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTopicNotFound, topic)
	}

	if offset < t.floor() {
		return nil, fmt.Errorf("%w: offset %d is below floor %d", ErrOffsetOutOfRange, offset, t.floor())
	}
	if offset >= t.nextOffset {
		return []Record{}, nil
	}

	start := int(offset - t.floor())
	end := len(t.records)
	// compare against the remaining window, not start+max: the sum overflows
	// for a request like max_records=math.MaxInt.
	if max > 0 && max < end-start {
		end = start + max
	}

	out := make([]Record, end-start)
	copy(out, t.records[start:end])

	recordsFetched.WithLabelValues(topic).Add(float64(len(out)))
	return out, nil
}
