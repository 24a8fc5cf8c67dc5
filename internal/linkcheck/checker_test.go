package linkcheck_test

import (
	"context"
	"errors"
	"secondchance/internal/linkcheck"
	"secondchance/pkg/domain"
	"secondchance/pkg/logger"
	mockreputation "secondchance/pkg/reputation/mock"
	"secondchance/pkg/serrors"
	mockstorage "secondchance/pkg/storage/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type testChecker struct {
	linkcheck.Checker

	st     *mockstorage.MockStorage
	client *mockreputation.MockClient
	reader *sdkmetric.ManualReader
}

func newTestChecker(t *testing.T) *testChecker {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	client := mockreputation.NewMockClient(ctrl)
	reader := sdkmetric.NewManualReader()

	c, err := linkcheck.New(st, client, linkcheck.Options{
		WriteTimeout:  time.Second,
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	})
	require.NoError(t, err)

	tc := &testChecker{Checker: c, st: st, client: client, reader: reader}
	// detached writes must hit the mocks before the controller is finished
	t.Cleanup(func() { tc.wait(t) })

	return tc
}

// wait drains detached writes so the gomock controller sees them before the test ends.
func (c *testChecker) wait(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx))
}

// lookups returns the linkcheck.lookups counter value per outcome.
func (c *testChecker) lookups(t *testing.T) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, c.reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "linkcheck.lookups" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(attribute.Key("outcome"))
				out[v.AsString()] += dp.Value
			}
		}
	}

	return out
}

func TestChecker_CheckLink_storedVerdict(t *testing.T) {
	c := newTestChecker(t)

	c.st.EXPECT().MasterByURL(gomock.Any(), "known.example").
		Return(&domain.Verdict{URL: "known.example", Score: 98, Safe: true, Success: true}, nil)

	v := c.CheckLink(context.Background(), "https://known.example/some/page")
	require.Equal(t, domain.Verdict{URL: "known.example", Score: 98, Safe: true, Success: true}, v)
	c.wait(t)
	require.Equal(t, map[string]int64{linkcheck.OutcomeHit: 1}, c.lookups(t))
}

func TestChecker_CheckLink_classifiesAndStores(t *testing.T) {
	c := newTestChecker(t)

	gomock.InOrder(
		c.st.EXPECT().MasterByURL(gomock.Any(), "good.example").Return(nil, nil),
		c.client.EXPECT().Classify(gomock.Any(), "good.example").
			Return(domain.ClassificationStats{Harmless: 199}, nil),
		c.st.EXPECT().UpsertMaster(gomock.Any(), "good.example", 100, true).Return(nil),
	)

	v := c.CheckLink(context.Background(), "http://good.example/")
	require.Equal(t, domain.Verdict{URL: "good.example", Score: 100, Safe: true, Success: true}, v)
	c.wait(t)
	require.Equal(t, map[string]int64{linkcheck.OutcomeClassified: 1}, c.lookups(t))
}

func TestChecker_CheckLink_storeErrorIsMiss(t *testing.T) {
	c := newTestChecker(t)

	c.st.EXPECT().MasterByURL(gomock.Any(), "flaky.example").Return(nil, errors.New("connection refused"))
	c.client.EXPECT().Classify(gomock.Any(), "flaky.example").
		Return(domain.ClassificationStats{Harmless: 10, Malicious: 3}, nil)
	c.st.EXPECT().UpsertMaster(gomock.Any(), "flaky.example", 36, false).Return(errors.New("connection refused"))

	v := c.CheckLink(context.Background(), "flaky.example")
	require.Equal(t, domain.Verdict{URL: "flaky.example", Score: 36, Safe: false, Success: true}, v)
	c.wait(t)
}

func TestChecker_CheckLink_rateLimited(t *testing.T) {
	c := newTestChecker(t)

	c.st.EXPECT().MasterByURL(gomock.Any(), "busy.example").Return(nil, nil).Times(2)
	c.client.EXPECT().Classify(gomock.Any(), "busy.example").
		Return(domain.ClassificationStats{}, serrors.KindOnly(serrors.ErrRateLimited)).Times(2)
	c.st.EXPECT().Enqueue(gomock.Any(), "busy.example").Return(true, nil)
	c.st.EXPECT().Enqueue(gomock.Any(), "busy.example").Return(false, nil)
	c.st.EXPECT().UpsertMaster(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for range 2 {
		v := c.CheckLink(context.Background(), "https://busy.example/a")
		require.Equal(t, domain.FailedVerdict(), v)
	}
	c.wait(t)
	require.Equal(t, map[string]int64{linkcheck.OutcomeRateLimited: 2}, c.lookups(t))
}

func TestChecker_CheckLink_failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{
			name:    "unknown to provider",
			err:     serrors.With(serrors.ErrNotFound, "never seen"),
			outcome: linkcheck.OutcomeNotFound,
		},
		{
			name:    "transport error",
			err:     errors.New("dial tcp: i/o timeout"),
			outcome: linkcheck.OutcomeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChecker(t)

			c.st.EXPECT().MasterByURL(gomock.Any(), "x.example").Return(nil, nil)
			c.client.EXPECT().Classify(gomock.Any(), "x.example").Return(domain.ClassificationStats{}, tt.err)

			v := c.CheckLink(context.Background(), "x.example")
			require.Equal(t, domain.FailedVerdict(), v)
			require.False(t, v.Success)
			c.wait(t)
			require.Equal(t, map[string]int64{tt.outcome: 1}, c.lookups(t))
		})
	}
}

func TestChecker_CheckLink_emptyHost(t *testing.T) {
	c := newTestChecker(t)

	v := c.CheckLink(context.Background(), "https:///path")
	require.Equal(t, domain.FailedVerdict(), v)
	c.wait(t)
	require.Equal(t, map[string]int64{linkcheck.OutcomeInvalid: 1}, c.lookups(t))
}

func TestChecker_CheckLink_respondsBeforeWriteBack(t *testing.T) {
	c := newTestChecker(t)

	release := make(chan struct{})
	written := make(chan struct{})
	c.st.EXPECT().MasterByURL(gomock.Any(), "slow.example").Return(nil, nil)
	c.client.EXPECT().Classify(gomock.Any(), "slow.example").
		Return(domain.ClassificationStats{Harmless: 96}, nil)
	c.st.EXPECT().UpsertMaster(gomock.Any(), "slow.example", 99, true).DoAndReturn(
		func(ctx context.Context, _ string, _ int, _ bool) error {
			<-release
			close(written)

			return ctx.Err()
		})

	// the caller's context is canceled right after the answer, the write must still land
	ctx, cancel := context.WithCancel(context.Background())
	v := c.CheckLink(ctx, "slow.example")
	cancel()
	require.True(t, v.Success)
	require.Equal(t, 99, v.Score)

	select {
	case <-written:
		t.Fatal("write back finished before the verdict was consumed")
	default:
	}

	close(release)
	c.wait(t)
	<-written
}

func TestChecker_Wait_timeout(t *testing.T) {
	c := newTestChecker(t)

	release := make(chan struct{})
	c.st.EXPECT().MasterByURL(gomock.Any(), "stuck.example").Return(nil, nil)
	c.client.EXPECT().Classify(gomock.Any(), "stuck.example").Return(domain.ClassificationStats{}, nil)
	c.st.EXPECT().UpsertMaster(gomock.Any(), "stuck.example", 0, false).DoAndReturn(
		func(context.Context, string, int, bool) error {
			<-release

			return nil
		})

	c.CheckLink(context.Background(), "stuck.example")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, c.Wait(ctx), context.DeadlineExceeded)

	close(release)
	c.wait(t)
}

func TestChecker_UpdateLink(t *testing.T) {
	t.Run("marks safe without classifying", func(t *testing.T) {
		c := newTestChecker(t)

		c.st.EXPECT().ForceSafe(gomock.Any(), "flagged.example").Return(nil)
		c.client.EXPECT().Classify(gomock.Any(), gomock.Any()).Times(0)

		ack := c.UpdateLink(context.Background(), "https://flagged.example/login")
		require.Equal(t, domain.Ack{URL: "flagged.example", Success: true}, ack)
	})

	t.Run("store failure", func(t *testing.T) {
		c := newTestChecker(t)

		c.st.EXPECT().ForceSafe(gomock.Any(), "flagged.example").Return(errors.New("connection refused"))

		ack := c.UpdateLink(context.Background(), "flagged.example")
		require.Equal(t, domain.Ack{URL: "flagged.example", Success: false}, ack)
	})

	t.Run("empty host", func(t *testing.T) {
		c := newTestChecker(t)

		ack := c.UpdateLink(context.Background(), "http://")
		require.False(t, ack.Success)
	})
}

func TestChecker_CheckLink_afterWait(t *testing.T) {
	c := newTestChecker(t)

	c.st.EXPECT().MasterByURL(gomock.Any(), "late.example").Return(nil, nil)
	c.client.EXPECT().Classify(gomock.Any(), "late.example").
		Return(domain.ClassificationStats{Harmless: 96}, nil)
	c.st.EXPECT().UpsertMaster(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	c.wait(t)

	// the verdict is still answered, only the write back is dropped
	v := c.CheckLink(context.Background(), "late.example")
	require.Equal(t, domain.Verdict{URL: "late.example", Score: 99, Safe: true, Success: true}, v)
	c.wait(t)
}
