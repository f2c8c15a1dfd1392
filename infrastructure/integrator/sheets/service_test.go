package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsdomain "github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/ads-crm-sync-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/ads-crm-sync-api/internal/config"
	"github.com/vfg2006/ads-crm-sync-api/pkg/retry"
	"go.uber.org/mock/gomock"
)

func newTestSink(t *testing.T) (*Sink, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockClient(ctrl)
	policy := retry.New(1, time.Millisecond).WithClock(
		func(time.Duration) {},
		func() time.Duration { return 0 },
	)

	return New(&config.Config{}, mockClient, policy), mockClient
}

func TestWriteSheet(t *testing.T) {
	sink, mockClient := newTestSink(t)

	gomock.InOrder(
		mockClient.EXPECT().ClearRange("'Resumo'!A:ZZ").Return(nil),
		mockClient.EXPECT().
			UpdateRange("'Resumo'!A1", gomock.Any()).
			DoAndReturn(func(_ string, values [][]interface{}) error {
				require.Len(t, values, 3)
				assert.Equal(t, []interface{}{"Campanha", "Custo"}, values[0])
				assert.Equal(t, []interface{}{"A", 1.5}, values[1])
				return nil
			}),
	)

	err := sink.WriteSheet("Resumo", []string{"Campanha", "Custo"}, [][]interface{}{
		{"A", 1.5},
		{"B", 2.0},
	})

	assert.NoError(t, err)
}

func TestWriteSheetClearFailureProceeds(t *testing.T) {
	sink, mockClient := newTestSink(t)

	gomock.InOrder(
		mockClient.EXPECT().
			ClearRange(gomock.Any()).
			Return(&sheetsdomain.APIError{Status: 400, Message: "invalid range"}),
		mockClient.EXPECT().UpdateRange(gomock.Any(), gomock.Any()).Return(nil),
	)

	err := sink.WriteSheet("Resumo", []string{"Campanha"}, nil)

	assert.NoError(t, err)
}

func TestWriteSheetEmptyRowsWritesHeadersOnly(t *testing.T) {
	sink, mockClient := newTestSink(t)

	mockClient.EXPECT().ClearRange(gomock.Any()).Return(nil)
	mockClient.EXPECT().
		UpdateRange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, values [][]interface{}) error {
			require.Len(t, values, 1)
			assert.Equal(t, []interface{}{"Campanha", "Custo"}, values[0])
			return nil
		})

	err := sink.WriteSheet("Resumo", []string{"Campanha", "Custo"}, nil)

	assert.NoError(t, err)
}

func TestWriteSheetUpdateFailureReturnsError(t *testing.T) {
	sink, mockClient := newTestSink(t)

	mockClient.EXPECT().ClearRange(gomock.Any()).Return(nil)
	mockClient.EXPECT().
		UpdateRange(gomock.Any(), gomock.Any()).
		Return(&sheetsdomain.APIError{Status: 403, Message: "forbidden"})

	err := sink.WriteSheet("Resumo", []string{"Campanha"}, nil)

	assert.Error(t, err)
}
