package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)

	SyncRecords.WithLabelValues("fixtures").Add(20)
	require.Equal(t, 20.0, testutil.ToFloat64(SyncRecords.WithLabelValues("fixtures")))

	// registering twice on the same registry must fail loudly
	require.Panics(t, func() { RegisterCollectors(reg) })
}
