package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/history"
	"github.com/julianstephens/stroll/internal/utils"
)

type HistoryCmd struct {
	Days int `help:"Number of trailing days to show." default:"7"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if c.Days < 1 || c.Days > constants.HistoryRetentionDays {
		return fmt.Errorf("days must be between 1 and %d", constants.HistoryRetentionDays)
	}

	sess, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	persisted, err := sess.History()
	if err != nil {
		return err
	}

	now := timeNow()
	window := history.Window(utils.LastNDays(c.Days, now), persisted, sess.Settings().DailyQuota)
	summary := history.Summarize(window)

	fmt.Printf("Last %d days:\n\n", c.Days)
	for i := len(window) - 1; i >= 0; i-- {
		day := window[i]
		bar := completionBar(day.CompletionPercentage)
		fmt.Printf("  %-10s %s %3d%%  (%d/%d)\n", utils.ReadableDate(day.Date, now),
			bar, day.CompletionPercentage, day.CompletedWalks, day.TotalWalks)
	}

	fmt.Printf("\n  Total walks:   %d/%d\n", summary.TotalWalks, summary.TotalPossible)
	fmt.Printf("  Average:       %d%%\n", summary.AverageCompletion)
	fmt.Printf("  Perfect days:  %d\n", summary.PerfectDays)
	fmt.Printf("  Est. distance: %.1f mi\n", summary.EstimatedMiles)
	fmt.Printf("\n  %s\n", history.Motivation(summary.AverageCompletion))
	return nil
}

func completionBar(pct int) string {
	const width = 10
	filled := pct * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
