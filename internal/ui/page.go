package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/iiroan/tinct/internal/app"
	"github.com/iiroan/tinct/internal/page"
)

// frameInterval paces redraws while timers or animations are pending.
const frameInterval = time.Second / 30

type frameMsg time.Time

type focusZone int

const (
	focusControls focusZone = iota
	focusPrimary
	focusSecondary
	focusZones
)

// PageModel hosts an App on the terminal.
type PageModel struct {
	app     *app.App
	logger  *log.Logger
	clock   func() time.Time
	noColor bool

	list      list.Model
	primary   colorPicker
	secondary colorPicker
	focus     focusZone
	help      help.Model
	keys      pageKeyMap

	width    int
	height   int
	ticking  bool
	status   string
	quitting bool
}

type pageLayout struct {
	stacked     bool
	leftWidth   int
	rightWidth  int
	leftHeight  int
	rightHeight int
	listWidth   int
	listHeight  int
}

// NewPageModel builds the terminal page for a. clock drives the run loop;
// nil uses the wall clock.
func NewPageModel(a *app.App, clock func() time.Time, logger *log.Logger, noColor bool) PageModel {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	controls := Controls()
	items := make([]list.Item, len(controls))
	for i, c := range controls {
		items[i] = c
	}

	l := list.New(items, controlDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := PageModel{
		app:       a,
		logger:    logger,
		clock:     clock,
		noColor:   noColor,
		list:      l,
		primary:   newColorPicker("Primary", a.Doc.ElementByID(page.IDPrimaryColor)),
		secondary: newColorPicker("Secondary", a.Doc.ElementByID(page.IDSecondaryColor)),
		help:      help.New(),
		keys:      newPageKeyMap(),
	}
	m.resizeList()
	m.refresh()
	return m
}

func (m PageModel) Init() tea.Cmd {
	return m.schedule()
}

func (m PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil
	case frameMsg:
		m.ticking = false
		m.advance()
		m.refresh()
		cmd := m.schedule()
		return m, cmd
	case tea.KeyPressMsg:
		// Timers scheduled by this key must start from the current time.
		m.advance()
		cmd := m.handleKey(msg)
		m.refresh()
		cmd = tea.Batch(cmd, m.schedule())
		return m, cmd
	}

	var cmd tea.Cmd
	if p := m.activePicker(); p != nil {
		*p, cmd = p.Update(msg)
	}
	return m, cmd
}

func (m *PageModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	k := msg.String()
	if k == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}

	if p := m.activePicker(); p != nil {
		switch {
		case matches(m.keys.Next, k):
			return m.setFocus((m.focus + 1) % focusZones)
		case matches(m.keys.Prev, k):
			return m.setFocus((m.focus + focusZones - 1) % focusZones)
		case k == "esc":
			p.Revert()
			m.status = ""
			return nil
		case k == "enter":
			m.commit(p)
			return nil
		}
		var cmd tea.Cmd
		*p, cmd = p.Update(msg)
		return cmd
	}

	switch {
	case k == "q" || k == "esc":
		m.quitting = true
		return tea.Quit
	case matches(m.keys.Next, k):
		return m.setFocus(focusPrimary)
	case matches(m.keys.Prev, k):
		return m.setFocus(focusSecondary)
	case matches(m.keys.Click, k):
		if item, ok := m.list.SelectedItem().(ControlItem); ok {
			m.click(item.ID)
		}
		return nil
	case matches(m.keys.Jump, k):
		if id, ok := m.selectByNumber(k); ok {
			m.click(id)
		}
		return nil
	}
	if c, ok := controlByHotkey(k); ok {
		m.click(c.ID)
		return nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *PageModel) activePicker() *colorPicker {
	switch m.focus {
	case focusPrimary:
		return &m.primary
	case focusSecondary:
		return &m.secondary
	default:
		return nil
	}
}

func (m *PageModel) setFocus(z focusZone) tea.Cmd {
	if p := m.activePicker(); p != nil {
		m.commit(p)
		p.Blur()
	}
	m.focus = z
	if p := m.activePicker(); p != nil {
		return p.Focus()
	}
	return nil
}

func (m *PageModel) commit(p *colorPicker) {
	if p.Commit() {
		m.status = ""
		return
	}
	if p.invalid {
		m.status = fmt.Sprintf("%s: %q is not a #rrggbb color", strings.ToLower(p.label), p.Value())
	}
}

func (m *PageModel) click(id string) {
	if p := m.activePicker(); p != nil {
		m.commit(p)
	}
	if err := m.app.Click(id); err != nil {
		m.logger.Error("control failed", "target", id, "err", err)
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m *PageModel) advance() {
	if err := m.app.Tick(m.clock()); err != nil {
		m.logger.Error("frame failed", "err", err)
		m.status = err.Error()
	}
}

func (m *PageModel) schedule() tea.Cmd {
	if m.ticking || !m.app.Busy() {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// refresh pulls the document state into the widgets and restyles them.
func (m *PageModel) refresh() {
	p := PaletteFor(m.app.Doc)
	p.Disabled = m.noColor
	ApplyPalette(p)

	a := m.app
	m.list.SetDelegate(newControlDelegate(p, func(id string) bool {
		return id == page.IDAnimateButton && a.Pressed()
	}))
	m.primary.Sync()
	m.secondary.Sync()

	keyStyle := lipgloss.NewStyle().Bold(true)
	hintStyle := lipgloss.NewStyle()
	if !p.Disabled {
		keyStyle = keyStyle.Foreground(v2(p.Accent))
		hintStyle = hintStyle.Foreground(v2(p.Muted))
	}
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = hintStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = hintStyle
	m.help.Styles.Ellipsis = hintStyle
}

func (m *PageModel) selectByNumber(keyNum string) (string, bool) {
	if len(keyNum) != 1 {
		return "", false
	}
	target := int(keyNum[0] - '1')
	items := m.list.Items()
	if target < 0 || target >= len(items) {
		return "", false
	}
	m.list.Select(target)
	item, ok := items[target].(ControlItem)
	return item.ID, ok
}

func (m *PageModel) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		tw, th := terminalSize()
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}
	return width, height
}

func (m *PageModel) resizeList() {
	layout := calculatePageLayout(m.size())
	m.list.SetSize(layout.listWidth, layout.listHeight)
}

func (m PageModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}

	layout := calculatePageLayout(m.size())
	p := ActivePalette()

	leftPanel := lipgloss.NewStyle().
		Width(layout.leftWidth).
		Height(layout.leftHeight).
		PaddingRight(1).
		Render(m.renderLeftPanel(layout.leftWidth - 1))

	rightPanel := lipgloss.NewStyle().
		Width(layout.rightWidth).
		Height(layout.rightHeight).
		PaddingLeft(1).
		Render(m.renderCards(layout.rightWidth-1, layout.rightHeight))

	var body string
	if layout.stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, leftPanel, "", rightPanel)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
	}

	footer := m.help.View(m.keys)
	if toast := m.renderToast(layout.leftWidth + layout.rightWidth); toast != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, toast, footer)
	}

	v := tea.NewView(Frame("tinct", "terminal preferences", body, footer))
	v.AltScreen = true
	if !p.Disabled {
		v.BackgroundColor = v2(p.Background)
	}
	return v
}

func (m PageModel) renderLeftPanel(innerWidth int) string {
	p := ActivePalette()
	heading := lipgloss.NewStyle().Bold(true)
	if !p.Disabled {
		heading = heading.Foreground(v2(p.Accent))
	}

	section := []string{
		heading.Render("Controls"),
		m.list.View(),
		"",
		heading.Render("Colors"),
		m.renderPicker(m.primary, m.focus == focusPrimary),
		m.renderPicker(m.secondary, m.focus == focusSecondary),
	}
	if m.status != "" {
		section = append(section, "", ErrorStyle.Render(ansi.Truncate(m.status, max(10, innerWidth), "...")))
	}
	return strings.Join(section, "\n")
}

func (m PageModel) renderPicker(picker colorPicker, focused bool) string {
	prefix := "  "
	if focused {
		prefix = "> "
	}
	label := fmt.Sprintf("%-10s", picker.label)
	if focused {
		label = PrimaryStyle().Render(label)
	} else {
		label = MutedStyle.Render(label)
	}
	line := prefix + label + " " + Swatch(picker.el.Value()) + " " + picker.View()
	if focused && picker.invalid {
		line += " " + WarningStyle.Render("invalid")
	}
	return line
}

func (m PageModel) renderCards(innerWidth int, innerHeight int) string {
	now := m.app.Loop.Now()
	cards := m.app.Doc.Cards()
	if len(cards) == 0 {
		return MutedStyle.Render("No cards")
	}

	rendered := make([]string, 0, len(cards))
	for _, el := range cards {
		rendered = append(rendered, m.renderCard(el, now, innerWidth))
	}
	out := lipgloss.JoinVertical(lipgloss.Left, rendered...)
	if lines := strings.Split(out, "\n"); len(lines) > innerHeight {
		out = strings.Join(lines[:innerHeight], "\n")
	}
	return out
}

// cardVisibility maps the card animation to 0 (hidden) through 1 (shown).
// Outside the active interval the card is drawn unanimated.
func cardVisibility(el *page.Element, now time.Time) float64 {
	phase, progress := el.AnimationPhase(now)
	if phase != page.PhaseRunning {
		return 1
	}
	return page.Ease(el.Animation().Easing, progress)
}

func (m PageModel) renderCard(el *page.Element, now time.Time, width int) string {
	p := ActivePalette()
	v := cardVisibility(el, now)
	inner := max(8, width-4)

	title := ansi.Truncate(el.Text(), inner, "...")
	body := ansi.Truncate(el.Data("body"), inner, "...")

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(max(10, width)).
		MarginLeft(int((1 - v) * 4))
	titleStyle := lipgloss.NewStyle().Bold(true)
	bodyStyle := lipgloss.NewStyle()
	if !p.Disabled {
		style = style.
			BorderForeground(v2(Blend(p.Background, p.Border, v))).
			Background(v2(Blend(p.Background, p.Surface, v)))
		titleStyle = titleStyle.Foreground(v2(Blend(p.Background, p.Primary, v)))
		bodyStyle = bodyStyle.Foreground(v2(Blend(p.Background, p.Foreground, v)))
	}
	return style.Render(titleStyle.Render(title) + "\n" + bodyStyle.Render(body))
}

func (m PageModel) renderToast(width int) string {
	el := m.app.Doc.ElementByID(page.IDNotification)
	if el == nil || !el.HasClass(page.ClassShow) {
		return ""
	}
	p := ActivePalette()
	style := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	if !p.Disabled {
		style = style.Background(v2(p.Secondary)).Foreground(v2(Contrast(p.Secondary)))
	}
	return style.Render(ansi.Truncate(el.Text(), max(10, width-2), "..."))
}

func calculatePageLayout(width int, height int) pageLayout {
	const (
		gap            = 2
		minLeftWidth   = 36
		minRightWidth  = 24
		stackThreshold = 80
		minPanelHeight = 8
		pickerRows     = 6
		minListHeight  = 5
	)

	bodyHeight := max(12, height-8)

	stacked := width < stackThreshold || width-minRightWidth-gap < minLeftWidth
	if stacked {
		leftHeight := max(minPanelHeight, (bodyHeight*3)/5)
		rightHeight := max(minPanelHeight, bodyHeight-leftHeight)
		return pageLayout{
			stacked:     true,
			leftWidth:   max(1, width),
			rightWidth:  max(1, width),
			leftHeight:  leftHeight,
			rightHeight: rightHeight,
			listWidth:   max(4, width-6),
			listHeight:  max(minListHeight, leftHeight-pickerRows),
		}
	}

	maxLeftWidth := width - minRightWidth - gap
	leftWidth := min(maxLeftWidth, max(minLeftWidth, int(float64(width)*0.45)))
	return pageLayout{
		leftWidth:   leftWidth,
		rightWidth:  width - leftWidth - gap,
		leftHeight:  bodyHeight,
		rightHeight: bodyHeight,
		listWidth:   max(4, leftWidth-5),
		listHeight:  max(minListHeight, bodyHeight-pickerRows-2),
	}
}

// RunPage runs the terminal page until the user quits.
func RunPage(a *app.App, logger *log.Logger, noColor bool) error {
	if !IsInteractiveTerminal() {
		return fmt.Errorf("non-interactive terminal")
	}
	program := tea.NewProgram(NewPageModel(a, time.Now, logger, noColor))
	_, err := program.Run()
	return err
}
