package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_ObservePage(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObservePage(nil, 10*time.Millisecond)
	m.ObservePage(nil, 20*time.Millisecond)
	m.ObservePage(errors.New("boom"), time.Millisecond)

	if got := testutil.ToFloat64(m.pagesRendered.WithLabelValues(StatusOK)); got != 2 {
		t.Errorf("ok pages = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.pagesRendered.WithLabelValues(StatusError)); got != 1 {
		t.Errorf("error pages = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.renderDuration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestMetrics_AddTags(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)

	m.AddTags("js", 3)
	m.AddTags("css", 1)
	m.AddTags("css", 0)

	want := `
# HELP pageinclude_asset_tags_total Total number of include tags emitted, by asset type
# TYPE pageinclude_asset_tags_total counter
pageinclude_asset_tags_total{type="css"} 1
pageinclude_asset_tags_total{type="js"} 3
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "pageinclude_asset_tags_total"); err != nil {
		t.Error(err)
	}
}

func TestMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObservePage(nil, time.Second)
	m.AddTags("js", 1)
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Error("second New on the same registry should panic")
		}
	}()
	New(reg)
}
