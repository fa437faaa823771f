package log

import (
	"sync"
	"testing"
)

func TestRecorderConcurrentLog(t *testing.T) {
	rec := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rec.Log(Event{Message: "x"})
			}
		}()
	}
	wg.Wait()

	if rec.Len() != 800 {
		t.Errorf("Len() = %d, want 800", rec.Len())
	}
}

func TestRecorderEventsIsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.Log(Event{Message: "orig"})

	events := rec.Events()
	events[0].Message = "changed"

	if rec.Events()[0].Message != "orig" {
		t.Error("Events() exposed internal slice")
	}

	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", rec.Len())
	}
}
