package topicgate

import (
	"context"
	"time"

	"github.com/porebric/configs"
)

const (
	confServerPort      = "server_port"
	confCloseTimeout    = "close_timeout"
	confFetchMaxRecords = "fetch_max_records"
)

type options struct {
	Port    int32
	Timeout time.Duration
}

func newOptions(ctx context.Context) *options {
	o := new(options)
	o.Port = int32(configs.Value(ctx, confServerPort).Int())
	o.Timeout = configs.Value(ctx, confCloseTimeout).Duration()

	if o.Timeout == 0 {
		o.Timeout = 3 * time.Second
	}
	if o.Port == 0 {
		o.Port = 8080
	}

	return o
}

// fetchMaxRecords is the record cap applied when a fetch request does not set
// max_records itself.
func fetchMaxRecords(ctx context.Context) int {
	maxRecords := int(configs.Value(ctx, confFetchMaxRecords).Int())
	if maxRecords <= 0 {
		maxRecords = 100
	}
	return maxRecords
}
