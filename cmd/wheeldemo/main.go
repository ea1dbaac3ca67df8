package main

import (
	"flag"
	"log"
	"time"

	"github.com/jiansoft/timewheel"
)

func main() {
	granularity := flag.Duration("granularity", 100*time.Millisecond, "background advance interval")
	count := flag.Int("n", 20, "number of synthetic timeouts to schedule")
	flag.Parse()

	log.Println("=== Timewheel Demo ===")
	log.Println()

	demonstrateWheelDirectly()
	demonstrateScheduler(*granularity, *count)

	log.Println()
	log.Println("=== Done ===")
}

// demonstrateWheelDirectly drives a bare Wheel by hand, the way a
// caller embedding it inside their own event loop would.
func demonstrateWheelDirectly() {
	log.Println("--- Bare Wheel, caller-driven time ---")

	w := timewheel.NewWheel()

	a := timewheel.NewTimeout()
	a.Set(5, "a")
	w.Start(a)

	b := timewheel.NewTimeout()
	b.Set(15, "b")
	w.Start(b)

	for now := uint64(0); now <= 15; now++ {
		if wait := w.Wait(); wait != timewheel.MaxWaitSentinel {
			log.Printf("at last=%d, wait() suggests sleeping %d units", w.Last(), wait)
		}
		w.Advance(now)
		for {
			t, ok := w.NextExpired()
			if !ok {
				break
			}
			log.Printf("at now=%d: %v expired", now, t.Payload())
		}
	}

	log.Println()
}

// demonstrateScheduler drives count synthetic timeouts through a
// Scheduler's background goroutine and reports final stats.
func demonstrateScheduler(granularity time.Duration, count int) {
	log.Println("--- Scheduler, background-driven time ---")

	stats := timewheel.NewStats()
	s := timewheel.NewScheduler(stats, timewheel.SchedulerOptions{
		Granularity: granularity,
	})
	s.Start()
	defer s.Stop()

	for i := 0; i < count; i++ {
		delay := time.Duration(i) * granularity / 2
		s.Schedule(delay, i)
	}

	time.Sleep(granularity * time.Duration(count+2))

	log.Printf("started=%d expired=%d canceled=%d", stats.Started(), stats.Expired(), stats.Canceled())
	log.Println()
}
