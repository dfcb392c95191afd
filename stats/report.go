package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/bookmark/internal/models"
	"github.com/ayoisaiah/bookmark/internal/timeutil"
	"github.com/ayoisaiah/bookmark/internal/ui"
)

const (
	barChartChar = "▇"
	reportLayout = "Monday, January 02, 2006"
)

// Report is everything shown by the stats command.
type Report struct {
	Now           time.Time     `json:"now"`
	Goals         []models.Goal `json:"goals"`
	Snapshot      Snapshot      `json:"snapshot"`
	FinishedBooks int           `json:"finished_books"`
}

func humanize(d time.Duration) string {
	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d.Round(time.Second)).
		LimitToUnit("hours").
		LimitFirstN(2).
		String()
}

func (r *Report) summary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	snap := r.Snapshot

	lines := []string{
		"Total reading time: " + ui.Green(humanize(snap.TotalReadingTime)),
		"This week: " + ui.Green(humanize(snap.WeekTotal())),
		"Today: " + ui.Green(humanize(snap.Today(r.Now))),
		fmt.Sprintf("Current streak: %s", ui.Green(pluralDays(snap.CurrentStreak))),
		fmt.Sprintf("Longest streak: %s", ui.Green(pluralDays(snap.LongestStreak))),
		fmt.Sprintf("Books finished: %s", ui.Green(r.FinishedBooks)),
	}

	return header + strings.Join(lines, "\n") + "\n"
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", n)
}

func (r *Report) weeklyChart() string {
	header := ui.Blue("\nThis week (minutes)")

	bars := make(pterm.Bars, 0, daysInAWeek)
	monday := timeutil.StartOfWeek(r.Now)

	for i, d := range r.Snapshot.WeeklyReadingTime {
		bars = append(bars, pterm.Bar{
			Label: monday.AddDate(0, 0, i).Weekday().String(),
			Value: timeutil.Round(d.Minutes()),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func (r *Report) goals() string {
	if len(r.Goals) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Goals")))

	for i := range r.Goals {
		g := &r.Goals[i]

		minutes := r.Snapshot.Today(r.Now).Minutes()
		label := "Daily"

		if g.Type == models.Weekly {
			minutes = r.Snapshot.WeekTotal().Minutes()
			label = "Weekly"
		}

		status := ui.Red(fmt.Sprintf("%d%%", g.Progress(minutes)))
		if g.IsAchieved(minutes) {
			status = ui.Green("achieved")
		}

		builder.WriteString(fmt.Sprintf(
			"%s goal: %d/%d min (%s)\n",
			label,
			timeutil.Round(minutes),
			g.TargetMinutes,
			status,
		))
	}

	return builder.String()
}

// Render writes the report to w.
func (r *Report) Render(w io.Writer) {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Reading statistics: %s", r.Now.Format(reportLayout))

	output := fmt.Sprint(
		header,
		r.summary(),
		r.goals(),
		r.weeklyChart(),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
