package reader

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// goTo moves to chapter i and saves the position. Indices outside the
// chapter list are ignored.
func (m *Model) goTo(i int) tea.Cmd {
	if i < 0 || i >= len(m.pkg.Chapters) || i == m.chapter {
		return nil
	}

	if i > m.chapter {
		m.tracker.TurnPage(1)
	}

	m.chapter = i
	m.saveProgress()

	return m.loadChapter(i)
}

func (m *Model) setContent() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(
		lipgloss.NewStyle().Width(m.viewport.Width).Render(m.text),
	)
	m.viewport.GotoTop()
}

func (m *Model) resize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.help.Width = msg.Width

	bodyWidth := msg.Width - bodyStyle.GetHorizontalFrameSize()
	bodyHeight := msg.Height -
		lipgloss.Height(m.headerView()) -
		lipgloss.Height(m.footerView())
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(bodyWidth, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = bodyWidth
		m.viewport.Height = bodyHeight
	}

	m.setContent()
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Next):
		return m, m.goTo(m.chapter + 1)

	case key.Matches(msg, keys.Prev):
		return m, m.goTo(m.chapter - 1)

	case key.Matches(msg, keys.PageDown):
		if m.ready && !m.viewport.AtBottom() {
			m.viewport.ViewDown()
			m.tracker.TurnPage(1)

			return m, nil
		}

		return m, m.goTo(m.chapter + 1)

	case key.Matches(msg, keys.PageUp):
		if m.ready {
			m.viewport.ViewUp()
		}

		return m, nil

	case key.Matches(msg, keys.Down):
		if m.ready {
			m.viewport.LineDown(1)
		}

		return m, nil

	case key.Matches(msg, keys.Up):
		if m.ready {
			m.viewport.LineUp(1)
		}

		return m, nil
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil

	case chapterMsg:
		if msg.index != m.chapter {
			return m, nil
		}

		if msg.err != nil {
			m.err = msg.err
			m.text = ""
		} else {
			m.text = msg.text
		}

		m.setContent()

		return m, nil

	case tickMsg:
		return m, tick()
	}

	var cmd tea.Cmd
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	return m, cmd
}
