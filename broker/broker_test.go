package broker

import (
	"errors"
	"math"
	"testing"
)

func produced(n int) []NewRecord {
	recs := make([]NewRecord, n)
	for i := range recs {
		recs[i] = NewRecord{Key: "k", Value: "v"}
	}
	return recs
}

func TestTopics(t *testing.T) {
	b := New()

	if err := b.Create("beta", 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := b.Create("alpha", 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("duplicate create", func(t *testing.T) {
		err := b.Create("alpha", 0)
		if !errors.Is(err, ErrTopicExists) {
			t.Fatalf("err=%v", err)
		}
	})

	t.Run("sorted listing", func(t *testing.T) {
		names := b.Topics()
		if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
			t.Fatalf("names=%v", names)
		}
	})

	t.Run("exists", func(t *testing.T) {
		if !b.Exists("alpha") || b.Exists("gamma") {
			t.Fatal("exists mismatch")
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := b.Delete("beta"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if !errors.Is(b.Delete("beta"), ErrTopicNotFound) {
			t.Fatal("want ErrTopicNotFound")
		}
	})
}

func TestProduceFetch(t *testing.T) {
	b := New()
	if err := b.Create("events", 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	offsets, err := b.Produce("events", []NewRecord{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "c", Value: "3"}})
	if err != nil {
		t.Fatalf("produce: %v", err)
	}
	for i, off := range offsets {
		if off != int64(i) {
			t.Fatalf("offsets=%v", offsets)
		}
	}

	t.Run("unknown topic", func(t *testing.T) {
		if _, err := b.Produce("missing", produced(1)); !errors.Is(err, ErrTopicNotFound) {
			t.Fatalf("err=%v", err)
		}
		if _, err := b.Fetch("missing", 0, 10); !errors.Is(err, ErrTopicNotFound) {
			t.Fatalf("err=%v", err)
		}
	})

	t.Run("window", func(t *testing.T) {
		recs, err := b.Fetch("events", 1, 10)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(recs) != 2 || recs[0].Offset != 1 || recs[0].Key != "b" || recs[1].Offset != 2 {
			t.Fatalf("recs=%+v", recs)
		}
	})

	t.Run("max caps the window", func(t *testing.T) {
		recs, err := b.Fetch("events", 0, 2)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(recs) != 2 || recs[1].Offset != 1 {
			t.Fatalf("recs=%+v", recs)
		}
	})

	t.Run("huge max returns the window", func(t *testing.T) {
		recs, err := b.Fetch("events", 1, math.MaxInt)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(recs) != 2 || recs[0].Offset != 1 || recs[1].Offset != 2 {
			t.Fatalf("recs=%+v", recs)
		}
	})

	t.Run("offset at tail yields empty set", func(t *testing.T) {
		recs, err := b.Fetch("events", 3, 10)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(recs) != 0 {
			t.Fatalf("recs=%+v", recs)
		}
	})

	t.Run("offsets continue across batches", func(t *testing.T) {
		offsets, err := b.Produce("events", produced(2))
		if err != nil {
			t.Fatalf("produce: %v", err)
		}
		if offsets[0] != 3 || offsets[1] != 4 {
			t.Fatalf("offsets=%v", offsets)
		}
	})
}

func TestRetention(t *testing.T) {
	b := New()
	if err := b.Create("short", 3); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := b.Produce("short", produced(5)); err != nil {
		t.Fatalf("produce: %v", err)
	}

	t.Run("trimmed offsets are out of range", func(t *testing.T) {
		if _, err := b.Fetch("short", 0, 10); !errors.Is(err, ErrOffsetOutOfRange) {
			t.Fatalf("err=%v", err)
		}
		if _, err := b.Fetch("short", 1, 10); !errors.Is(err, ErrOffsetOutOfRange) {
			t.Fatalf("err=%v", err)
		}
	})

	t.Run("floor survives the trim", func(t *testing.T) {
		recs, err := b.Fetch("short", 2, 10)
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		if len(recs) != 3 || recs[0].Offset != 2 || recs[2].Offset != 4 {
			t.Fatalf("recs=%+v", recs)
		}
	})
}

func TestSubscribe(t *testing.T) {
	b := New()
	if err := b.Create("events", 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("unknown topic", func(t *testing.T) {
		if _, _, err := b.Subscribe("missing"); !errors.Is(err, ErrTopicNotFound) {
			t.Fatalf("err=%v", err)
		}
	})

	ch, cancel, err := b.Subscribe("events")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if _, err := b.Produce("events", []NewRecord{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}); err != nil {
		t.Fatalf("produce: %v", err)
	}

	for i := 0; i < 2; i++ {
		select {
		case rec := <-ch:
			if rec.Offset != int64(i) {
				t.Fatalf("rec=%+v", rec)
			}
		default:
			t.Fatal("subscriber is missing a record")
		}
	}

	t.Run("cancel closes the channel", func(t *testing.T) {
		cancel()
		cancel()

		if _, ok := <-ch; ok {
			t.Fatal("channel still open after cancel")
		}
	})

	t.Run("produce after cancel does not panic", func(t *testing.T) {
		if _, err := b.Produce("events", produced(1)); err != nil {
			t.Fatalf("produce: %v", err)
		}
	})

	t.Run("delete closes subscribers", func(t *testing.T) {
		if err := b.Create("beta", 0); err != nil {
			t.Fatalf("create: %v", err)
		}
		ch, cancel, err := b.Subscribe("beta")
		if err != nil {
			t.Fatalf("subscribe: %v", err)
		}
		defer cancel()

		if err := b.Delete("beta"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, ok := <-ch; ok {
			t.Fatal("channel still open after topic delete")
		}
	})
}
