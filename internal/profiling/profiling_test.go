package profiling

import (
	"sync"
	"testing"
	"time"
)

func TestRecorderOrdersSlowestFirst(t *testing.T) {
	var r Recorder
	r.Add("fast", 2*time.Millisecond)
	r.Add("slow", 40*time.Millisecond)
	r.Add("slow", 1500*time.Microsecond)

	stages := r.Snapshot()
	if len(stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(stages))
	}
	if stages[0].Name != "slow" || stages[0].Calls != 2 || stages[0].Total != 41500*time.Microsecond {
		t.Errorf("unexpected first stage %+v", stages[0])
	}

	if got, want := r.TopN(5), "slow:41.5ms, fast:2ms"; got != want {
		t.Errorf("TopN = %q, want %q", got, want)
	}
	if got := r.TopN(1); got != "slow:41.5ms" {
		t.Errorf("TopN(1) = %q", got)
	}
	if got := r.TopN(-1); got != "" {
		t.Errorf("TopN(-1) = %q, want empty", got)
	}
}

func TestRecorderReset(t *testing.T) {
	var r Recorder
	r.Add("stage", time.Millisecond)
	r.Reset()
	if n := len(r.Snapshot()); n != 0 {
		t.Errorf("expected empty snapshot after Reset, got %d", n)
	}
}

func TestTrackConcurrent(t *testing.T) {
	var r Recorder
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Track("worker")()
		}()
	}
	wg.Wait()
	stages := r.Snapshot()
	if len(stages) != 1 || stages[0].Calls != 32 {
		t.Errorf("expected one stage with 32 calls, got %+v", stages)
	}
}

func TestPackageRecorder(t *testing.T) {
	Reset()
	stop := Track("pkg.stage")
	stop()
	if s := Snapshot(); len(s) != 1 || s[0].Name != "pkg.stage" {
		t.Errorf("unexpected snapshot %+v", s)
	}
	Reset()
}
