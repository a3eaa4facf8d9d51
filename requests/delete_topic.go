package requests

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

type DeleteTopicRequest struct {
	Topic string
}

func (q *DeleteTopicRequest) Set(r *http.Request) error {
	q.Topic = mux.Vars(r)["topic"]
	return nil
}

func (q *DeleteTopicRequest) Validate() (bool, string, string) {
	if q.Topic == "" {
		return false, "topic", "required"
	}
	return true, "", ""
}

func (q *DeleteTopicRequest) String() string {
	return fmt.Sprintf("delete topic=%s", q.Topic)
}
