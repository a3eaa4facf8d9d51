package ws

import (
	stdjson "encoding/json"
	"testing"
	"time"

	"github.com/topicgate/topicgate/broker"
)

func TestRecordFrame(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	frame := recordFrame("events", broker.Record{Offset: 7, Key: "k", Value: `v "quoted"`, Timestamp: ts})

	var decoded struct {
		Topic     string `json:"topic"`
		Offset    int64  `json:"offset"`
		Key       string `json:"key"`
		Value     string `json:"value"`
		Timestamp int64  `json:"timestamp"`
	}
	if err := stdjson.Unmarshal(frame, &decoded); err != nil {
		t.Fatalf("unmarshal %s: %v", frame, err)
	}

	if decoded.Topic != "events" || decoded.Offset != 7 || decoded.Key != "k" {
		t.Fatalf("decoded=%+v", decoded)
	}
	if decoded.Value != `v "quoted"` {
		t.Fatalf("value=%q", decoded.Value)
	}
	if decoded.Timestamp != 1700000000123 {
		t.Fatalf("timestamp=%d", decoded.Timestamp)
	}
}

func TestErrorMsg(t *testing.T) {
	frame := newError(InvalidMsgPrefix, `stream is "read-only"`, "events").Msg()

	var decoded struct {
		Code  string `json:"code"`
		M     string `json:"msg"`
		Topic string `json:"topic"`
	}
	if err := stdjson.Unmarshal(frame, &decoded); err != nil {
		t.Fatalf("unmarshal %s: %v", frame, err)
	}

	if decoded.Code != InvalidMsgPrefix.String() {
		t.Fatalf("code=%q", decoded.Code)
	}
	if decoded.M != `stream is "read-only"` {
		t.Fatalf("msg=%q", decoded.M)
	}
	if decoded.Topic != "events" {
		t.Fatalf("topic=%q", decoded.Topic)
	}

	var keys map[string]any
	if err := stdjson.Unmarshal(frame, &keys); err != nil {
		t.Fatalf("unmarshal keys: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("want exactly three keys, got %v", keys)
	}
}
