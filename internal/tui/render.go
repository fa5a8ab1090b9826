package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrz1836/pulse/internal/domain"
	"github.com/mrz1836/pulse/internal/review"
	"github.com/mrz1836/pulse/internal/timeutil"
)

// RenderReport renders a review report as styled text, one section per
// project group. Groups are ordered alphabetically; entries keep the
// index's ordering.
func RenderReport(r *review.Report, now time.Time) string {
	if r.Empty() {
		return StyleMuted.Render("No activity in this period.") + "\n"
	}

	var b strings.Builder

	b.WriteString(StyleBold.Render(fmt.Sprintf("Review %s – %s",
		timeutil.DayKey(r.Interval.Start), timeutil.DayKey(r.Interval.End))))
	b.WriteString("\n\n")

	for _, group := range r.Groups() {
		b.WriteString(StyleHeading.Render(group))
		b.WriteString("\n")

		for _, s := range r.Sessions[group] {
			b.WriteString(renderSession(s, now))
		}
		for _, t := range r.CreatedTasks[group] {
			b.WriteString(renderTask(t, "added"))
		}
		for _, t := range r.CompletedTasks[group] {
			b.WriteString(renderTask(t, "done"))
		}

		if dur := review.SumDuration(r.Sessions[group], now); dur > 0 {
			b.WriteString(StyleMuted.Render(fmt.Sprintf("  focus time: %s", timeutil.FormatDuration(dur))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(StyleBold.Render(fmt.Sprintf("Total focus time: %s",
		timeutil.FormatDuration(r.TotalDuration(now)))))
	b.WriteString("\n")

	return b.String()
}

// RenderSessionStatus renders the ongoing-session line for `pulse status`.
func RenderSessionStatus(s *domain.Session, now time.Time) string {
	if s == nil {
		return StyleMuted.Render("No ongoing session.") + "\n"
	}

	line := fmt.Sprintf("%s %s", StyleSuccess.Render("●"), StyleBold.Render(s.Project))
	if s.Focus != "" {
		line += " — " + s.Focus
	}
	line += StyleMuted.Render(fmt.Sprintf(" (%s)", timeutil.FormatDuration(s.Duration(now))))
	return line + "\n"
}

// RenderTaskList renders tasks as a checklist.
func RenderTaskList(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return StyleMuted.Render("No tasks.") + "\n"
	}

	var b strings.Builder
	for _, t := range tasks {
		mark := "[ ]"
		if t.Done {
			mark = StyleSuccess.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("%s %s", mark, t.Description))
		if !t.InInbox() {
			b.WriteString(StyleMuted.Render(" #" + t.Project))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderSession(s *domain.Session, now time.Time) string {
	focus := s.Focus
	if focus == "" {
		focus = "(no focus)"
	}
	marker := "■"
	if s.Ongoing() {
		marker = "●"
	}
	return fmt.Sprintf("  %s %s %s\n",
		StyleSuccess.Render(marker),
		focus,
		StyleMuted.Render(timeutil.FormatDuration(s.Duration(now))))
}

func renderTask(t *domain.Task, verb string) string {
	mark := "+"
	if verb == "done" {
		mark = "✓"
	}
	return fmt.Sprintf("  %s %s %s\n", StyleSuccess.Render(mark), t.Description, StyleMuted.Render(verb))
}
