package metrics

import (
	"testing"
	"time"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryAppended(t *testing.T) {
	m, err := New(prometheus.NewRegistry(), Config{ServiceName: "test", Environment: "test"})
	require.NoError(t, err)

	m.EntryAppended(&entity.PartHistory{ActionType: entity.ActionTypeAddition, PreviousQuantity: 0, NewQuantity: 10})
	m.EntryAppended(&entity.PartHistory{ActionType: entity.ActionTypeWithdrawal, PreviousQuantity: 10, NewQuantity: 4})
	m.EntryAppended(&entity.PartHistory{ActionType: entity.ActionTypeAddition, PreviousQuantity: 4, NewQuantity: 4})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ledgerEntries.WithLabelValues(entity.ActionTypeAddition)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerEntries.WithLabelValues(entity.ActionTypeWithdrawal)))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.ledgerUnits.WithLabelValues(entity.ActionTypeAddition)))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.ledgerUnits.WithLabelValues(entity.ActionTypeWithdrawal)))
}

func TestObserveHTTP(t *testing.T) {
	m, err := New(prometheus.NewRegistry(), Config{})
	require.NoError(t, err)

	m.ObserveHTTP("GET", "/api/spare-parts", 200, 15*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/spare-parts", "200")))
}

func TestNew_RegistroDuplicadoFalla(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg, Config{})
	require.NoError(t, err)
	_, err = New(reg, Config{})
	assert.Error(t, err)
}

func TestNilMetricsNoPanic(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.EntryAppended(&entity.PartHistory{})
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	})
}
