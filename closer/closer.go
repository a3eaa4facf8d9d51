package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Closer collects shutdown hooks and runs them in reverse registration order.
type Closer struct {
	mu  sync.Mutex
	fns []func(ctx context.Context) error
}

func (c *Closer) Add(fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fns = append(c.fns, fn)
}

func (c *Closer) Close(ctx context.Context) error {
	c.mu.Lock()
	fns := c.fns
	c.fns = nil
	c.mu.Unlock()

	var errs []string
	for i := len(fns) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			errs = append(errs, fmt.Sprintf("shutdown cancelled: %v", ctx.Err()))
			return fmt.Errorf("close: %s", strings.Join(errs, "; "))
		default:
		}

		if err := fns[i](ctx); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close: %s", strings.Join(errs, "; "))
	}
	return nil
}
