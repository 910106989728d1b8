package cli

import (
	"fmt"

	"github.com/julianstephens/stroll/internal/progress"
	"github.com/julianstephens/stroll/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	sess, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	today := sess.Today()
	printDay(today)

	if progress.IsComplete(today) {
		fmt.Println("\nAll walks done. Nice work!")
		return nil
	}

	if next, ok := progress.NextPending(today, timeNow().Hour()); ok {
		fmt.Printf("\nNext walk: %s\n", utils.HourLabel(next.Hour))
	}
	return nil
}
