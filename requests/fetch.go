package requests

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type FetchRequest struct {
	Topic      string
	Offset     int64
	MaxRecords int
}

func (q *FetchRequest) Set(r *http.Request) error {
	q.Topic = mux.Vars(r)["topic"]

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parse offset: %w", err)
		}
		q.Offset = offset
	}

	if raw := r.URL.Query().Get("max_records"); raw != "" {
		maxRecords, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("parse max_records: %w", err)
		}
		q.MaxRecords = maxRecords
	}

	return nil
}

func (q *FetchRequest) Validate() (bool, string, string) {
	if q.Topic == "" {
		return false, "topic", "required"
	}
	if q.Offset < 0 {
		return false, "offset", "must not be negative"
	}
	if q.MaxRecords < 0 {
		return false, "max_records", "must not be negative"
	}
	return true, "", ""
}

func (q *FetchRequest) String() string {
	return fmt.Sprintf("fetch topic=%s offset=%d max=%d", q.Topic, q.Offset, q.MaxRecords)
}
