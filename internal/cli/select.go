package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framecode/pkg/host"
	pkgio "github.com/matzehuels/framecode/pkg/io"
	"github.com/matzehuels/framecode/pkg/pipeline"
	"github.com/matzehuels/framecode/pkg/scene"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listCheckedStyle  = lipgloss.NewStyle().Foreground(colorGreen)
)

// previewLines caps the markup preview below the node list.
const previewLines = 8

// selectCommand creates the select command: an interactive stand-in for a
// design tool's selection events.
func (c *CLI) selectCommand() *cobra.Command {
	var (
		flags  optionFlags
		output string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "select [document]",
		Short: "Interactively select nodes and preview the generated code",
		Long: `Interactively select nodes and preview the generated code.

Every change of the selection is converted in the background, exactly as a
design-tool host would trigger it; a newer selection cancels the build for
an older one. Press enter to keep the current result: it is written to the
output directory, or printed when no directory is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg)
			if err != nil {
				return err
			}
			return c.runSelect(cmd.Context(), args[0], opts, output, name)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the kept result to this directory")
	cmd.Flags().StringVarP(&name, "name", "n", "", "base name of the output files (default: document file name)")

	return cmd
}

// runSelect runs the selection UI and writes or prints the kept result.
func (c *CLI) runSelect(ctx context.Context, input string, opts pipeline.Options, output, name string) error {
	doc, err := pkgio.ImportDocument(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	// log lines would tear the alt screen
	quiet := newLogger(io.Discard, c.Logger.GetLevel())
	opts.Logger = quiet

	var program *tea.Program
	poster := host.PosterFunc(func(ctx context.Context, msg host.Message) error {
		program.Send(hostMsg{msg})
		return nil
	})
	session, err := host.NewSession(pipeline.NewRunner(nil, quiet), poster, host.Config{Options: opts, Logger: quiet})
	if err != nil {
		return err
	}
	defer session.Close()

	model := NewSelectModel(ctx, doc, session)
	program = tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}

	m := final.(SelectModel)
	if !m.Kept || m.Last == nil || m.Last.Type != host.MessageArtifacts {
		return nil
	}

	if output == "" {
		fmt.Println(m.Last.Markup)
		fmt.Println(m.Last.Stylesheet)
		return nil
	}
	if name == "" {
		name = baseName(input, doc.Name)
	}
	paths, err := pkgio.WriteArtifacts(output, name, pkgio.Artifacts{
		Markup:        m.Last.Markup,
		MarkupExt:     opts.MarkupExt(),
		Stylesheet:    m.Last.Stylesheet,
		StylesheetExt: opts.StylesheetExt(),
	})
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}
	printSuccess("Kept selection %s", strings.Join(m.Last.Selection, ", "))
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// =============================================================================
// SelectModel - Interactive node selection
// =============================================================================

// hostMsg carries a message posted by the session into the UI loop.
type hostMsg struct{ host.Message }

// selectRow is one line of the flattened document tree.
type selectRow struct {
	node  *scene.Node
	depth int
}

// SelectModel is the bubbletea model for interactive node selection.
type SelectModel struct {
	ctx      context.Context
	doc      *pkgio.Document
	session  *host.Session
	rows     []selectRow
	selected map[string]bool

	Cursor int
	Height int
	Offset int

	// Pending counts selection events whose result has not arrived.
	Pending int
	// Last is the most recent message posted by the session.
	Last *host.Message
	// Kept is set when the user confirmed the current result.
	Kept bool
}

// NewSelectModel creates a selection model over every node of doc.
func NewSelectModel(ctx context.Context, doc *pkgio.Document, session *host.Session) SelectModel {
	m := SelectModel{
		ctx:      ctx,
		doc:      doc,
		session:  session,
		selected: make(map[string]bool),
		Height:   15,
	}
	depths := make(map[*scene.Node]int)
	scene.Walk(doc.Nodes, func(n, parent *scene.Node) bool {
		if parent != nil {
			depths[n] = depths[parent] + 1
		}
		m.rows = append(m.rows, selectRow{node: n, depth: depths[n]})
		return true
	})
	for _, id := range doc.Selection {
		m.selected[id] = true
	}
	return m
}

func (m SelectModel) Init() tea.Cmd {
	if len(m.selected) == 0 {
		return nil
	}
	return m.emit()
}

func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "x":
			if len(m.rows) == 0 {
				return m, nil
			}
			id := m.rows[m.Cursor].node.ID
			m.selected[id] = !m.selected[id]
			if !m.selected[id] {
				delete(m.selected, id)
			}
			m.Pending++
			return m, m.emit()
		case "enter":
			if m.Last != nil && m.Last.Type == host.MessageArtifacts {
				m.Kept = true
				return m, tea.Quit
			}
		}
	case hostMsg:
		last := msg.Message
		m.Last = &last
		m.Pending = 0
	case tea.WindowSizeMsg:
		m.Height = msg.Height/2 - 4
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// Event returns the selection event for the current selection, in
// document order.
func (m SelectModel) Event() host.Event {
	var ev host.Event
	var ids []string
	for _, r := range m.rows {
		if m.selected[r.node.ID] {
			ev.Selection = append(ev.Selection, r.node)
			ids = append(ids, r.node.ID)
		}
	}
	ev.ParentID = host.ParentOf(m.doc.Nodes, ids, m.doc.ParentID)
	return ev
}

// emit hands the current selection to the session. The session posts
// while holding its lock and posting waits for the UI loop, so Handle must
// run outside Update.
func (m SelectModel) emit() tea.Cmd {
	ev := m.Event()
	return func() tea.Msg {
		m.session.Handle(m.ctx, ev)
		return nil
	}
}

func (m SelectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Nodes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  ⏎ keep  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.Offset; i < end; i++ {
		r := m.rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		check := "[ ]"
		if m.selected[r.node.ID] {
			check = listCheckedStyle.Render("[x]")
		}
		label := fmt.Sprintf("%s%s %s", strings.Repeat("  ", r.depth), rowName(r.node), listDimStyle.Render(string(r.node.Type)+" "+r.node.ID))

		style := listNormalStyle
		switch {
		case i == m.Cursor:
			style = listSelectedStyle
		case r.node.Kind() == scene.KindUnsupported:
			style = listDimStyle
		}
		b.WriteString(cursor + check + " " + style.Render(label) + "\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d selected", m.Cursor+1, len(m.rows), len(m.selected))))
	b.WriteString("\n\n")
	b.WriteString(m.status())

	return b.String()
}

// status renders the latest session message below the list.
func (m SelectModel) status() string {
	switch {
	case m.Pending > 0:
		return listDimStyle.Render("building…")
	case m.Last == nil:
		return listDimStyle.Render("nothing selected")
	case m.Last.Type == host.MessageError:
		return StyleError.Render(iconError + " " + m.Last.Error)
	case m.Last.Type == host.MessageSelection:
		return StyleSuccess.Render(iconSuccess) + " " + strings.Join(m.Last.Selection, ", ")
	}

	lines := strings.Split(m.Last.Markup, "\n")
	more := ""
	if len(lines) > previewLines {
		more = listDimStyle.Render(fmt.Sprintf("\n… %d more lines", len(lines)-previewLines))
		lines = lines[:previewLines]
	}
	return StyleSuccess.Render(iconSuccess) + " " + listDimStyle.Render(m.Last.BuildID) + "\n" +
		StyleValue.Render(strings.Join(lines, "\n")) + more
}

// rowName returns the display name of a node.
func rowName(n *scene.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return strings.ToLower(string(n.Type))
}
