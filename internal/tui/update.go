package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gregglawdallas/caseval/internal/domain"
)

var (
	keyUp     = key.NewBinding(key.WithKeys("up", "k"))
	keyDown   = key.NewBinding(key.WithKeys("down", "j"))
	keyLeft   = key.NewBinding(key.WithKeys("left", "h"))
	keyRight  = key.NewBinding(key.WithKeys("right", "l"))
	keyUnlock = key.NewBinding(key.WithKeys("u", "enter"))
	keyQuit   = key.NewBinding(key.WithKeys("q", "ctrl+c"))

	keyNext   = key.NewBinding(key.WithKeys("tab", "down"))
	keyPrev   = key.NewBinding(key.WithKeys("shift+tab", "up"))
	keyToggle = key.NewBinding(key.WithKeys(" "))
	keySubmit = key.NewBinding(key.WithKeys("enter"))
	keyCancel = key.NewBinding(key.WithKeys("esc"))
)

// Update handles messages and advances the model (required by tea.Model).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogLoadedMsg:
		m.cfg = msg.Config
		m.ready = true
		m.recompute()
		return m, nil

	case leadSavedMsg:
		m.lead = msg.Lead
		m.mode = modeAdjust
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeContact {
			return m.updateContact(msg)
		}
		return m.updateAdjust(msg)
	}

	return m, nil
}

func (m Model) updateAdjust(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyQuit):
		return m, tea.Quit

	case key.Matches(msg, keyUp):
		if m.focus > 0 {
			m.focus--
		}
		m.syncFocus()
		return m, nil

	case key.Matches(msg, keyDown):
		if m.focus < rowCount-1 {
			m.focus++
		}
		m.syncFocus()
		return m, nil

	case key.Matches(msg, keyLeft):
		m.adjust(-1)
		return m, nil

	case key.Matches(msg, keyRight):
		m.adjust(1)
		return m, nil

	case key.Matches(msg, keyUnlock):
		if !m.ready || m.Unlocked() {
			return m, nil
		}
		m.mode = modeContact
		m.contactFocus = contactName
		m.nameInput.Focus()
		m.phoneInput.Blur()
		m.err = nil
		return m, nil
	}

	return m, nil
}

// adjust applies a left/right step to the focused row and relocks.
func (m *Model) adjust(dir int) {
	if !m.ready {
		return
	}

	switch m.focus {
	case rowBodyPart:
		m.bodyPart = cycle(m.bodyPart, dir, len(m.cfg.BodyParts))
	case rowConduct:
		m.conduct = cycle(m.conduct, dir, len(m.cfg.ConductTypes))
	case rowFault:
		next := m.faultIdx + dir
		if next >= 0 && next < len(domain.ValidFaultPercents) {
			m.faultIdx = next
		}
	default:
		s := m.sliders[m.focus-rowMedical]
		if dir > 0 {
			s.Increment()
		} else {
			s.Decrement()
		}
	}
	m.touch()
}

func cycle(i, dir, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+dir)%n + n) % n
}

// syncFocus mirrors the focused row onto the slider components.
func (m *Model) syncFocus() {
	for i, s := range m.sliders {
		s.IsFocused = m.focus == rowMedical+i
	}
}

func (m Model) updateContact(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyCancel):
		m.mode = modeAdjust
		m.err = nil
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, keyNext):
		m.contactFocus = (m.contactFocus + 1) % contactRows
		m.syncContactFocus()
		return m, nil

	case key.Matches(msg, keyPrev):
		m.contactFocus = (m.contactFocus + contactRows - 1) % contactRows
		m.syncContactFocus()
		return m, nil

	case key.Matches(msg, keyToggle) && m.contactFocus == contactAgree:
		m.agreed = !m.agreed
		return m, nil

	case key.Matches(msg, keySubmit):
		return m, m.unlockCmd()
	}

	// Route typing to the focused text input.
	var cmd tea.Cmd
	switch m.contactFocus {
	case contactName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case contactPhone:
		m.phoneInput, cmd = m.phoneInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) syncContactFocus() {
	m.nameInput.Blur()
	m.phoneInput.Blur()
	switch m.contactFocus {
	case contactName:
		m.nameInput.Focus()
	case contactPhone:
		m.phoneInput.Focus()
	}
}
