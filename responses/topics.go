package responses

import "net/http"

// Record is a single consumed record as it appears on the wire.
type Record struct {
	Offset    int64  `json:"offset"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

type TopicListResponse struct {
	Topics []string `json:"topics"`
}

func (r *TopicListResponse) PrepareResponse(w http.ResponseWriter) error {
	return json.NewEncoder(w).Encode(r)
}

// ProduceResponse reports the offsets assigned to an accepted batch, in the
// order the records were submitted.
type ProduceResponse struct {
	Offsets []int64 `json:"offsets"`
}

func (r *ProduceResponse) PrepareResponse(w http.ResponseWriter) error {
	return json.NewEncoder(w).Encode(r)
}

type FetchResponse struct {
	Records []Record `json:"records"`
}

// PrepareResponse streams the record set instead of building an intermediate
// document, so large fetches cost one buffer.
func (r *FetchResponse) PrepareResponse(w http.ResponseWriter) error {
	s := json.BorrowStream(w)
	defer json.ReturnStream(s)

	s.WriteObjectStart()
	s.WriteObjectField("records")
	s.WriteArrayStart()
	for i, rec := range r.Records {
		if i > 0 {
			s.WriteMore()
		}
		s.WriteObjectStart()
		s.WriteObjectField("offset")
		s.WriteInt64(rec.Offset)
		s.WriteMore()
		s.WriteObjectField("key")
		s.WriteString(rec.Key)
		s.WriteMore()
		s.WriteObjectField("value")
		s.WriteString(rec.Value)
		s.WriteMore()
		s.WriteObjectField("timestamp")
		s.WriteInt64(rec.Timestamp)
		s.WriteObjectEnd()
	}
	s.WriteArrayEnd()
	s.WriteObjectEnd()

	if s.Error != nil {
		return s.Error
	}
	return s.Flush()
}

// APIVersion advertises the supported version range of one gateway API.
type APIVersion struct {
	Name       string `json:"name"`
	MinVersion int    `json:"min_version"`
	MaxVersion int    `json:"max_version"`
}

type VersionsResponse struct {
	Versions []APIVersion `json:"versions"`
}

func (r *VersionsResponse) PrepareResponse(w http.ResponseWriter) error {
	return json.NewEncoder(w).Encode(r)
}
