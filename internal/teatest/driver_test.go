package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

// counter counts Enter presses; each press also schedules a bumpMsg.
type counter struct {
	presses int
	bumps   int
	width   int
}

func (c counter) Init() tea.Cmd { return func() tea.Msg { return bumpMsg{} } }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case bumpMsg:
		c.bumps++
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			c.presses++
			return c, tea.Batch(nil, func() tea.Msg { return bumpMsg{} })
		case tea.KeyCtrlC:
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestDriver_DrainsCommands(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	d.DrainInit()
	assert.Equal(t, 1, d.Model.(counter).bumps)
	assert.Equal(t, 80, d.Model.(counter).width)

	d.PressEnter()
	d.PressEnter()
	m := d.Model.(counter)
	assert.Equal(t, 2, m.presses)
	assert.Equal(t, 3, m.bumps)
}

func TestDriver_StopsAfterQuit(t *testing.T) {
	d := New(t, counter{})
	d.PressCtrlC()
	assert.True(t, d.Quitting)

	d.PressEnter()
	assert.Equal(t, 0, d.Model.(counter).presses)
}

func TestDriver_EnterUntil(t *testing.T) {
	d := New(t, counter{})
	ok := d.EnterUntil(func() bool { return d.Model.(counter).presses == 3 }, 10)
	assert.True(t, ok)
	assert.Equal(t, 3, d.Model.(counter).presses)

	ok = d.EnterUntil(func() bool { return false }, 2)
	assert.False(t, ok)
	assert.Equal(t, 5, d.Model.(counter).presses)
}
