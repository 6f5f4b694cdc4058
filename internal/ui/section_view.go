package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultBodyWidth  = 80
	defaultBodyHeight = 10
)

// SectionView displays the body of the active section in a scrollable viewport.
type SectionView struct {
	section  Section
	viewport viewport.Model
	width    int
	height   int
}

var _ View = (*SectionView)(nil)

// NewSectionView creates an empty section view.
func NewSectionView() *SectionView {
	vp := viewport.New(defaultBodyWidth, defaultBodyHeight)
	return &SectionView{
		viewport: vp,
		width:    defaultBodyWidth,
		height:   defaultBodyHeight,
	}
}

// Init implements View
func (v *SectionView) Init() tea.Cmd {
	return v.viewport.Init()
}

// Update implements View. Only vertical scroll keys are handled here; the strip owns
// the horizontal ones.
func (v *SectionView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			v.viewport.LineDown(1)
		case "k", "up":
			v.viewport.LineUp(1)
		case "ctrl+d", "pgdown":
			v.viewport.ViewDown()
		case "ctrl+u", "pgup":
			v.viewport.ViewUp()
		}
		return v, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View implements View
func (v *SectionView) View() string {
	return v.viewport.View()
}

// SetSection replaces the displayed section and scrolls back to the top.
func (v *SectionView) SetSection(s Section) {
	v.section = s
	v.refreshContent()
	v.viewport.GotoTop()
}

// Section returns the displayed section.
func (v *SectionView) Section() Section {
	return v.section
}

// SetSize sets the size of the body area.
func (v *SectionView) SetSize(width, height int) {
	v.width = width
	v.height = max(height, 1)
	v.viewport.Width = v.width
	v.viewport.Height = v.height
	v.refreshContent()
}

// Height returns the height of the body area.
func (v *SectionView) Height() int {
	return v.height
}

// YOffset reports how far the body is scrolled.
func (v *SectionView) YOffset() int {
	return v.viewport.YOffset
}

func (v *SectionView) refreshContent() {
	if v.section.Title == "" {
		v.viewport.SetContent(Styles.Hint.Render("Nothing selected"))
		return
	}
	body := Styles.Body.Width(max(v.width, 1)).Render(v.section.Body)
	v.viewport.SetContent(Styles.Heading.Render(v.section.Title) + "\n\n" + body)
}
