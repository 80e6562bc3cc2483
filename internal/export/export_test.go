package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/routeworks/docscan/internal/model"
)

type mockSink struct {
	mock.Mock
}

func (m *mockSink) CreateTask(ctx context.Context, rec model.DeliveryRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func validRecord(ref string) model.DeliveryRecord {
	return model.DeliveryRecord{
		TaskID:      "TASK-" + ref,
		CustomerRef: ref,
		DeliveryAddress: model.Address{
			Line1:        "Kerkstraat 1, 1000 Brussel",
			ContactName:  "Jan Peeters",
			ContactPhone: "+32 477 12 34 56",
		},
		ServiceDate: "2025-10-11",
	}
}

func TestExport_AllValid(t *testing.T) {
	sink := &mockSink{}
	sink.On("CreateTask", mock.Anything, mock.AnythingOfType("model.DeliveryRecord")).Return(nil).Times(2)

	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	e := New(sink, WithClock(func() time.Time { return now }))

	sum := e.Export(context.Background(), []model.DeliveryRecord{validRecord("ORD-100"), validRecord("ORD-101")})

	assert.True(t, sum.Success)
	assert.Equal(t, 2, sum.TotalDeliveries)
	assert.Equal(t, 2, sum.Successful)
	assert.Equal(t, 0, sum.Failed)
	assert.Empty(t, sum.Errors)
	assert.Equal(t, now, sum.Timestamp)
	require.Len(t, sum.Results, 2)
	assert.Equal(t, "created", sum.Results[0].Status)
	sink.AssertExpectations(t)
}

func TestExport_InvalidRecordsFailIndividually(t *testing.T) {
	sink := &mockSink{}
	sink.On("CreateTask", mock.Anything, mock.AnythingOfType("model.DeliveryRecord")).Return(nil).Once()

	noRef := validRecord("ORD-100")
	noRef.CustomerRef = ""
	noAddr := validRecord("ORD-101")
	noAddr.DeliveryAddress.Line1 = model.AddressNotFound

	e := New(sink)
	sum := e.Export(context.Background(), []model.DeliveryRecord{noRef, noAddr, validRecord("ORD-102")})

	assert.True(t, sum.Success)
	assert.Equal(t, 3, sum.TotalDeliveries)
	assert.Equal(t, 1, sum.Successful)
	assert.Equal(t, 2, sum.Failed)
	require.Len(t, sum.Errors, 2)
	assert.Contains(t, sum.Errors[0], "customer reference")
	assert.Contains(t, sum.Errors[1], "address")
	assert.Equal(t, "failed", sum.Results[0].Status)
	assert.Equal(t, "created", sum.Results[2].Status)
	sink.AssertExpectations(t)
}

func TestExport_SinkErrorReported(t *testing.T) {
	sink := &mockSink{}
	sink.On("CreateTask", mock.Anything, mock.AnythingOfType("model.DeliveryRecord")).Return(assert.AnError).Once()

	e := New(sink)
	sum := e.Export(context.Background(), []model.DeliveryRecord{validRecord("ORD-100")})

	assert.False(t, sum.Success)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, "failed", sum.Results[0].Status)
	sink.AssertExpectations(t)
}

func TestExport_EmptyBatch(t *testing.T) {
	e := New(&mockSink{})
	sum := e.Export(context.Background(), nil)
	assert.False(t, sum.Success)
	assert.Equal(t, 0, sum.TotalDeliveries)
}
