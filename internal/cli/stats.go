package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type StatsCmd struct {
	Hours bool `help:"Show the per-hour completion histogram."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	doc := ctx.Store.Document()
	st := doc.Statistics

	fmt.Println("Totals:")
	fmt.Printf("  Created:    %d\n", st.TotalCreated)
	fmt.Printf("  Completed:  %d\n", st.TotalCompleted)
	fmt.Printf("  Skipped:    %d\n", st.TotalSkipped)
	fmt.Printf("  Completion: %.0f%%\n", st.CompletionRate*100)
	fmt.Printf("\nStreak: %d day(s), longest %d\n", doc.Streak.Current, st.LongestStreak)
	fmt.Printf("Score today: %d\n", doc.Streak.Score)

	fmt.Println("\nCompletions by weekday:")
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		fmt.Printf("  %-9s %s\n", wd, strings.Repeat("#", st.PerWeekday[int(wd)]))
	}

	if c.Hours {
		fmt.Println("\nCompletions by hour:")
		for hour, n := range st.PerHour {
			if n > 0 {
				fmt.Printf("  %02d:00  %s\n", hour, strings.Repeat("#", n))
			}
		}
	}

	if len(st.SkipReasons) > 0 {
		fmt.Println("\nSkip reasons:")
		reasons := make([]string, 0, len(st.SkipReasons))
		for reason := range st.SkipReasons {
			reasons = append(reasons, reason)
		}
		sort.Slice(reasons, func(i, j int) bool {
			if st.SkipReasons[reasons[i]] != st.SkipReasons[reasons[j]] {
				return st.SkipReasons[reasons[i]] > st.SkipReasons[reasons[j]]
			}
			return reasons[i] < reasons[j]
		})
		for _, reason := range reasons {
			fmt.Printf("  %3dx  %s\n", st.SkipReasons[reason], reason)
		}
	}
	return nil
}
