package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpstream(t *testing.T) {
	m := New("test-service")

	m.RecordUpstream("branchservice", OutcomeOK)
	m.RecordUpstream("branchservice", OutcomeOK)
	m.RecordUpstream("branchservice", OutcomeError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("branchservice", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("branchservice", OutcomeError)))
}

func TestRecordUpstream_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordUpstream("branchservice", OutcomeError)
	})
}
