package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/output"
)

// View renders the calculator (required by tea.Model).
func (m Model) View() string {
	if !m.ready {
		return titleStyle.Render("Loading calculator tables...")
	}

	title := titleStyle.Render("Injury Settlement Calculator")
	subtitle := subtitleStyle.Render("Minor injury and property damage claims")

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderParameters(),
		" ",
		m.renderEstimate(),
	)

	sections := []string{title, subtitle, body}
	if m.mode == modeContact {
		sections = append(sections, m.renderContactForm())
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
	}
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderParameters() string {
	var rows []string

	rows = append(rows, m.chooserRow(rowBodyPart, "Injury category", m.bodyPartLabel()))
	rows = append(rows, m.chooserRow(rowConduct, "Defendant conduct", m.conductLabel()))
	for i, s := range m.sliders {
		rows = append(rows, m.sliderRow(rowMedical+i, s.Label, s.RenderCompact()))
	}
	rows = append(rows, m.chooserRow(rowFault, "Your fault share", fmt.Sprintf("%d%%", domain.ValidFaultPercents[m.faultIdx])))

	style := panelStyle
	if m.mode == modeAdjust {
		style = focusedPanelStyle
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) bodyPartLabel() string {
	if len(m.cfg.BodyParts) == 0 {
		return "n/a"
	}
	return m.cfg.BodyParts[m.bodyPart].Label.EN
}

func (m Model) conductLabel() string {
	if len(m.cfg.ConductTypes) == 0 {
		return "n/a"
	}
	return m.cfg.ConductTypes[m.conduct].Label.EN
}

func (m Model) chooserRow(row int, label, value string) string {
	text := rowLabelStyle.Render(label) + rowValueStyle.Render("‹ "+value+" ›")
	if m.mode == modeAdjust && m.focus == row {
		return focusedRowStyle.Render("> ") + text
	}
	return "  " + text
}

func (m Model) sliderRow(row int, label, rendered string) string {
	text := rowLabelStyle.Render(label) + rendered
	if m.mode == modeAdjust && m.focus == row {
		return focusedRowStyle.Render("> ") + text
	}
	return "  " + text
}

// money masks dollar figures while the gate is locked.
func (m Model) money(d decimal.Decimal) string {
	if !m.Unlocked() {
		return lockedValueStyle.Render("$ [locked]")
	}
	return metricValueStyle.Render(output.FormatCurrency(d))
}

func (m Model) renderEstimate() string {
	var rows []string

	if m.estimateErr != nil {
		return panelStyle.Render(errorStyle.Render(m.estimateErr.Error()))
	}

	est := m.estimate
	propertyOnly := len(m.cfg.BodyParts) > 0 && m.cfg.BodyParts[m.bodyPart].ID == "none"
	if propertyOnly {
		rows = append(rows, metricLabelStyle.Render("Claim type")+metricValueStyle.Render("Property damage only"))
	}

	rows = append(rows,
		metricLabelStyle.Render("Economic damages")+m.money(est.Economic),
		metricLabelStyle.Render("Non-economic damages")+m.money(est.NonEconomic),
		metricLabelStyle.Render("Applied multiplier")+metricValueStyle.Render(est.Multiplier+"x"),
		"",
		metricLabelStyle.Render("Estimated range")+m.money(est.RangeLow)+rowValueStyle.Render(" to ")+m.money(est.RangeHigh),
	)

	if m.Unlocked() {
		if m.lead != nil {
			rows = append(rows, "", hintStyle.Render("Lead captured: "+m.lead.ID))
		}
	} else {
		rows = append(rows, "", hintStyle.Render("Press u to reveal your estimate"))
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderContactForm() string {
	agree := "[ ]"
	if m.agreed {
		agree = "[x]"
	}
	agreeRow := agree + " I agree to be contacted about my claim"
	if m.contactFocus == contactAgree {
		agreeRow = focusedRowStyle.Render("> ") + agreeRow
	} else {
		agreeRow = "  " + agreeRow
	}

	rows := []string{
		titleStyle.Render("See your estimate"),
		"  " + m.nameInput.View(),
		"  " + m.phoneInput.View(),
		agreeRow,
		hintStyle.Render("Tab to move, Space to agree, Enter to unlock, Esc to cancel"),
	}
	return focusedPanelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		shortcut("↑/↓", "select"),
		shortcut("←/→", "adjust"),
		shortcut("u", "unlock"),
		shortcut("q", "quit"),
	}
	return statusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

func shortcut(keys, desc string) string {
	return statusKeyStyle.Render(keys) + " " + desc
}
