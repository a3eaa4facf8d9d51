package requests

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

type ProducedRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ProduceRequest struct {
	Topic   string           `json:"-"`
	Records []ProducedRecord `json:"records"`
}

func (q *ProduceRequest) Set(r *http.Request) error {
	q.Topic = mux.Vars(r)["topic"]
	return json.NewDecoder(r.Body).Decode(q)
}

func (q *ProduceRequest) Validate() (bool, string, string) {
	if q.Topic == "" {
		return false, "topic", "required"
	}
	if len(q.Records) == 0 {
		return false, "records", "at least one record required"
	}
	return true, "", ""
}

func (q *ProduceRequest) String() string {
	return fmt.Sprintf("produce topic=%s records=%d", q.Topic, len(q.Records))
}
