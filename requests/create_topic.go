package requests

import (
	"fmt"
	"net/http"
	"strings"
)

type CreateTopicRequest struct {
	Name string `json:"name"`
	// Retention caps the number of records kept per topic; 0 means unlimited.
	Retention int `json:"retention"`
}

func (q *CreateTopicRequest) Set(r *http.Request) error {
	return json.NewDecoder(r.Body).Decode(q)
}

func (q *CreateTopicRequest) Validate() (bool, string, string) {
	if q.Name == "" {
		return false, "name", "required"
	}
	if strings.ContainsAny(q.Name, "/ ") {
		return false, "name", "must not contain slashes or spaces"
	}
	if q.Retention < 0 {
		return false, "retention", "must not be negative"
	}
	return true, "", ""
}

func (q *CreateTopicRequest) String() string {
	return fmt.Sprintf("create topic=%s retention=%d", q.Name, q.Retention)
}
