package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.BasesScanned.Inc()
	m.Candidates.Add(42)
	m.SequenceEntries.Inc()
	m.CurrentBase.Set(7)
	m.CurrentMax.Set(6643)

	require.Equal(t, float64(1), testutil.ToFloat64(m.BasesScanned))
	require.Equal(t, float64(42), testutil.ToFloat64(m.Candidates))
	require.Equal(t, float64(6643), testutil.ToFloat64(m.CurrentMax))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.BasesScanned.Inc()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "palinscan_bases_scanned_total 1"),
		"missing counter in %q", body)
}
