package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgenius/internal/tutor"
	"github.com/abhisek/mathgenius/internal/ui/theme"
)

func (c *ChatScreen) View(width, height int) string {
	if c.errMsg != "" {
		return renderError(width, height, c.errMsg)
	}
	if c.session == nil {
		return renderLoading(width, height)
	}
	if c.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}

	inputArea := c.renderInputArea(width)
	inputHeight := lipgloss.Height(inputArea)

	transcriptHeight := height - inputHeight - 1
	if transcriptHeight < 0 {
		transcriptHeight = 0
	}
	transcript := c.renderTranscript(width, transcriptHeight)

	return transcript + "\n" + inputArea
}

// renderTranscript renders the newest messages that fit in the available
// height, bottom-aligned like a chat log.
func (c *ChatScreen) renderTranscript(width, height int) string {
	bubbleWidth := width * 2 / 3
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var blocks []string
	for _, msg := range c.session.Messages {
		blocks = append(blocks, c.renderBubble(msg, width, bubbleWidth))
	}
	if c.waiting {
		thinking := theme.Hint.Render(c.session.TutorID + " is thinking...")
		blocks = append(blocks, thinking)
	}

	lines := strings.Split(strings.Join(blocks, "\n"), "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

// renderBubble renders one message: tutor bubbles on the left, student
// bubbles pushed right.
func (c *ChatScreen) renderBubble(msg tutor.Message, width, bubbleWidth int) string {
	text := wrapText(msg.Content, bubbleWidth-4)

	if msg.FromTutor {
		name := theme.TutorName.Render(c.session.TutorID)
		bubble := theme.TutorBubble.MaxWidth(bubbleWidth).Render(text)
		return name + "\n" + bubble
	}

	name := theme.StudentName.Render(c.profile.Name)
	bubble := theme.StudentBubble.MaxWidth(bubbleWidth).Render(text)
	block := name + "\n" + bubble

	pad := width - lipgloss.Width(bubble) - 2
	if pad < 0 {
		pad = 0
	}
	indented := make([]string, 0, 2)
	for _, line := range strings.Split(block, "\n") {
		indented = append(indented, strings.Repeat(" ", pad)+line)
	}
	return strings.Join(indented, "\n")
}

// renderInputArea renders the suggestion row (when present) above the
// text input.
func (c *ChatScreen) renderInputArea(width int) string {
	var b strings.Builder

	suggestions := c.currentSuggestions()
	if len(suggestions) > 0 && !c.waiting {
		parts := make([]string, 0, len(suggestions))
		for i, sg := range suggestions {
			if i == c.suggestIdx {
				parts = append(parts, theme.SuggestionActive.Render(sg))
			} else {
				parts = append(parts, theme.SuggestionInactive.Render(sg))
			}
		}
		b.WriteString("  " + strings.Join(parts, " "))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")
	b.WriteString("  > " + c.input.View())
	return b.String()
}

func renderLoading(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Hint.Render("Finding you a tutor..."))
}

func renderError(width, height int, msg string) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Render("Something went wrong:") +
		"\n\n" + theme.Body.Render(msg) +
		"\n\n" + theme.Hint.Render("press any key to exit")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	content := theme.Card.Render(
		theme.Body.Bold(true).Render("End this session?") +
			"\n\n" + theme.Hint.Render("Y to finish, N to keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// wrapText soft-wraps text at word boundaries to the given width.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
