package topicgate

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/porebric/logger"

	"github.com/topicgate/topicgate/broker"
	"github.com/topicgate/topicgate/errors"
	"github.com/topicgate/topicgate/requests"
	"github.com/topicgate/topicgate/responses"
)

// RegisterTopicEndpoints binds the broker's topic API onto the router.
func RegisterTopicEndpoints(router Router, b *broker.Broker) {
	router.Endpoint("/topics", http.MethodGet,
		func() requests.Request { return &requests.Empty{} }, listTopics(b))
	router.Endpoint("/topics", http.MethodPost,
		func() requests.Request { return &requests.CreateTopicRequest{} }, createTopic(b))
	router.Endpoint("/topics/{topic}", http.MethodPost,
		func() requests.Request { return &requests.ProduceRequest{} }, produce(b))
	router.Endpoint("/topics/{topic}", http.MethodDelete,
		func() requests.Request { return &requests.DeleteTopicRequest{} }, deleteTopic(b))
	router.Endpoint("/topics/{topic}/records", http.MethodGet,
		func() requests.Request { return &requests.FetchRequest{} }, fetch(b))
	router.Endpoint("/versions", http.MethodGet,
		func() requests.Request { return &requests.Empty{} }, versions())
}

// TopicKeyFn is the ws hub key function: a connection subscribes to the topic
// named in the query string, rejected when the topic does not exist.
func TopicKeyFn(b *broker.Broker) func(r *http.Request) string {
	return func(r *http.Request) string {
		topic := r.URL.Query().Get("topic")
		if !b.Exists(topic) {
			return ""
		}
		return topic
	}
}

func listTopics(b *broker.Broker) Action {
	return func(_ context.Context, _ requests.Request) (responses.Response, int) {
		return &responses.TopicListResponse{Topics: b.Topics()}, http.StatusOK
	}
}

func createTopic(b *broker.Broker) Action {
	return func(ctx context.Context, req requests.Request) (responses.Response, int) {
		q := req.(*requests.CreateTopicRequest)
		if err := b.Create(q.Name, q.Retention); err != nil {
			return brokerError(ctx, err)
		}
		return &responses.SuccessResponse{Success: true, Message: "topic created"}, http.StatusCreated
	}
}

func deleteTopic(b *broker.Broker) Action {
	return func(ctx context.Context, req requests.Request) (responses.Response, int) {
		q := req.(*requests.DeleteTopicRequest)
		if err := b.Delete(q.Topic); err != nil {
			return brokerError(ctx, err)
		}
		return &responses.SuccessResponse{Success: true, Message: "topic deleted"}, http.StatusOK
	}
}

func produce(b *broker.Broker) Action {
	return func(ctx context.Context, req requests.Request) (responses.Response, int) {
		q := req.(*requests.ProduceRequest)

		recs := make([]broker.NewRecord, 0, len(q.Records))
		for _, rec := range q.Records {
			recs = append(recs, broker.NewRecord{Key: rec.Key, Value: rec.Value})
		}

		offsets, err := b.Produce(q.Topic, recs)
		if err != nil {
			return brokerError(ctx, err)
		}
		return &responses.ProduceResponse{Offsets: offsets}, http.StatusOK
	}
}

func fetch(b *broker.Broker) Action {
	return func(ctx context.Context, req requests.Request) (responses.Response, int) {
		q := req.(*requests.FetchRequest)

		maxRecords := q.MaxRecords
		if maxRecords == 0 {
			maxRecords = fetchMaxRecords(ctx)
		}

		recs, err := b.Fetch(q.Topic, q.Offset, maxRecords)
		if err != nil {
			return brokerError(ctx, err)
		}

		out := make([]responses.Record, 0, len(recs))
		for _, rec := range recs {
			out = append(out, responses.Record{
				Offset:    rec.Offset,
				Key:       rec.Key,
				Value:     rec.Value,
				Timestamp: rec.Timestamp.UnixMilli(),
			})
		}
		return &responses.FetchResponse{Records: out}, http.StatusOK
	}
}

func versions() Action {
	return func(_ context.Context, _ requests.Request) (responses.Response, int) {
		return &responses.VersionsResponse{
			Versions: []responses.APIVersion{
				{Name: "topics", MinVersion: 1, MaxVersion: 1},
				{Name: "records", MinVersion: 1, MaxVersion: 1},
			},
		}, http.StatusOK
	}
}

func brokerError(ctx context.Context, err error) (responses.Response, int) {
	var kind int32
	switch {
	case stderrors.Is(err, broker.ErrTopicNotFound):
		kind = errors.KindTopicNotFound
	case stderrors.Is(err, broker.ErrTopicExists):
		kind = errors.KindTopicExists
	case stderrors.Is(err, broker.ErrOffsetOutOfRange):
		kind = errors.KindOffsetOutOfRange
	default:
		kind = errors.KindCritical
	}

	logger.Warn(ctx, "broker error", "error", err)
	resp, httpCode := errors.GetError("", kind)
	return resp, httpCode
}
