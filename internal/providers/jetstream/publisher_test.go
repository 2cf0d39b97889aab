package jetstream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookaway/lookaway/internal/adapter"
	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/logger"
	"github.com/lookaway/lookaway/internal/messaging"
	"github.com/lookaway/lookaway/internal/mocks"
	jspublisher "github.com/lookaway/lookaway/internal/providers/jetstream"
)

// testPublisherMocks contains all the mocks needed for testing the publisher
type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
	json   *mocks.MockJSON
	config jspublisher.Config
}

// setupTestPublisher creates all the mocks needed by the publisher
func setupTestPublisher(t *testing.T) *testPublisherMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
		json:   mocks.NewMockJSON(ctrl),
		config: jspublisher.Config{
			URL:            "nats://localhost:4222",
			StreamName:     "MARSHMALLOWS",
			SubjectPrefix:  "marshmallows",
			MaxReconnects:  3,
			ReconnectWait:  time.Second,
			ConnectionName: "lookaway-test",
		},
	}
}

// tearDownTestPublisher cleans up the test mocks
func tearDownTestPublisher(mocks *testPublisherMocks) {
	mocks.ctrl.Finish()
}

func (tm *testPublisherMocks) expectConnect() {
	tm.natsJS.EXPECT().
		Connect(tm.config.URL, gomock.Any()).
		Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), jetstream.StreamConfig{
			Name:     "MARSHMALLOWS",
			Subjects: []string{"marshmallows.>"},
		}).
		Return(nil, nil)
}

func testEvent() *domain.AllocationEvent {
	return &domain.AllocationEvent{
		EventID:      "01JNK5Q8Z3V7X2B4C6D8E0F1G2",
		AllocationID: 42,
		AccountID:    uuid.New(),
		EntityType:   domain.EntityTypeArticle,
		EntityID:     7,
		Weight:       150,
		EntityWeight: 300,
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewPublisher_ConnectError(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer tearDownTestPublisher(mocks)

	mocks.natsJS.EXPECT().
		Connect(mocks.config.URL, gomock.Any()).
		Return(nil, nil, errors.New("no servers available"))

	_, err := jspublisher.NewPublisher(context.Background(), mocks.config, mocks.natsJS, mocks.json)
	assert.ErrorContains(t, err, "failed to connect to NATS")
}

func TestNewPublisher_StreamError(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer tearDownTestPublisher(mocks)

	mocks.natsJS.EXPECT().Connect(mocks.config.URL, gomock.Any()).Return(mocks.conn, mocks.js, nil)
	mocks.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil, errors.New("insufficient resources"))
	mocks.conn.EXPECT().Close()

	_, err := jspublisher.NewPublisher(context.Background(), mocks.config, mocks.natsJS, mocks.json)
	assert.ErrorContains(t, err, "failed to create stream MARSHMALLOWS")
}

func TestPublishAllocation(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer tearDownTestPublisher(mocks)

	mocks.expectConnect()
	publisher, err := jspublisher.NewPublisher(context.Background(), mocks.config, mocks.natsJS, mocks.json)
	require.NoError(t, err)

	event := testEvent()
	payload := []byte(`{"event_id":"01JNK5Q8Z3V7X2B4C6D8E0F1G2"}`)
	mocks.json.EXPECT().Marshal(event).Return(payload, nil)
	mocks.js.EXPECT().
		Publish(gomock.Any(), "marshmallows.allocations.article", payload, gomock.Any()).
		Return(&jetstream.PubAck{Stream: "MARSHMALLOWS", Sequence: 1}, nil)

	require.NoError(t, publisher.PublishAllocation(context.Background(), event))
}

func TestPublishAllocation_Errors(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer tearDownTestPublisher(mocks)

	mocks.expectConnect()
	publisher, err := jspublisher.NewPublisher(context.Background(), mocks.config, mocks.natsJS, mocks.json)
	require.NoError(t, err)

	event := testEvent()

	mocks.json.EXPECT().Marshal(event).Return(nil, errors.New("unsupported value"))
	assert.ErrorContains(t, publisher.PublishAllocation(context.Background(), event), "failed to marshal event")

	mocks.json.EXPECT().Marshal(event).Return([]byte("{}"), nil)
	mocks.js.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("nats: timeout"))
	assert.ErrorContains(t, publisher.PublishAllocation(context.Background(), event), "failed to publish event")
}

func TestClose(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer tearDownTestPublisher(mocks)

	mocks.expectConnect()
	publisher, err := jspublisher.NewPublisher(context.Background(), mocks.config, mocks.natsJS, mocks.json)
	require.NoError(t, err)

	mocks.conn.EXPECT().Drain().Return(nil)
	publisher.Close()

	select {
	case <-publisher.CloseChan():
	default:
		t.Fatal("close channel is still open")
	}
}

func TestClose_DrainFailureForcesClose(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer tearDownTestPublisher(mocks)

	mocks.expectConnect()
	publisher, err := jspublisher.NewPublisher(context.Background(), mocks.config, mocks.natsJS, mocks.json)
	require.NoError(t, err)

	mocks.conn.EXPECT().Drain().Return(errors.New("connection closed"))
	mocks.conn.EXPECT().Close()
	publisher.Close()

	_, open := <-publisher.CloseChan()
	assert.False(t, open)
}

func TestNopPublisher(t *testing.T) {
	var publisher messaging.Publisher = messaging.NewNopPublisher()

	require.NoError(t, publisher.PublishAllocation(context.Background(), testEvent()))
	publisher.Close()
	publisher.Close()

	_, open := <-publisher.CloseChan()
	assert.False(t, open)
}

func TestRealJSON(t *testing.T) {
	data, err := adapter.NewJSON().Marshal(testEvent())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entity_type":"article"`)
}
