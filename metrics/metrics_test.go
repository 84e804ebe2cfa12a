package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewWithNilRegistererWorks(t *testing.T) {
	m := New(nil)
	m.BlocksTotal.Inc()
	m.BlueScoreMax.Set(3)
	m.MergesetSize.Observe(2)
	m.MergesetSize.Observe(4)
	require.Equal(t, 3.0, m.MergesetSize.Read())
}

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	require.NotNil(t, m)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestDuplicateRegistrationDoesNotPanic(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() {
		New(reg)
		New(reg)
	})
}
