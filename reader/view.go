package reader

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/bookmark/internal/timeutil"
)

func (m *Model) headerView() string {
	title := titleStyle.Render(m.pkg.Title) +
		chapterStyle.Render(" by "+m.pkg.Author)

	position := "no chapters"
	if ch, ok := m.pkg.Chapter(m.chapter); ok {
		position = fmt.Sprintf(
			"%s (%d/%d)",
			ch.Title,
			m.chapter+1,
			len(m.pkg.Chapters),
		)
	}

	clock := clockStyle.Render(timeutil.FormatDuration(m.elapsed()))
	if sess := m.tracker.Current(); sess != nil {
		clock = chapterStyle.Render("since "+sess.StartTime.Format(m.layout)+" ") + clock
	}

	gap := m.width -
		lipgloss.Width(title) -
		lipgloss.Width(clock) -
		headerStyle.GetHorizontalFrameSize()
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Render(
		title + strings.Repeat(" ", gap) + clock + "\n" +
			chapterStyle.Render(position),
	)
}

func (m *Model) footerView() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()))
		s.WriteString("\n")
	}

	if m.ready {
		s.WriteString(fmt.Sprintf("%3.f%%  ", m.viewport.ScrollPercent()*100))
	}

	s.WriteString(m.help.View(keys))

	return footerStyle.Render(s.String())
}

func (m *Model) bodyView() string {
	if len(m.pkg.Chapters) == 0 {
		return bodyStyle.Render(chapterStyle.Render("This book has no chapters."))
	}

	if !m.ready {
		return bodyStyle.Render("Loading…")
	}

	return bodyStyle.Render(m.viewport.View())
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)
}
