// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kiosk

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taibuivan/masjid/internal/rotation"
)

// # Styles

type styles struct {
	header    lipgloss.Style
	hero      lipgloss.Style
	title     lipgloss.Style
	body      lipgloss.Style
	muted     lipgloss.Style
	button    lipgloss.Style
	dot       lipgloss.Style
	activeDot lipgloss.Style
	panel     lipgloss.Style
	tag       lipgloss.Style
	cancelled lipgloss.Style
	footer    lipgloss.Style
	failure   lipgloss.Style
}

func newStyles() styles {
	green := lipgloss.Color("#047857")
	gold := lipgloss.Color("#b45309")
	grey := lipgloss.Color("#6b7280")

	return styles{
		header: lipgloss.NewStyle().
			Background(green).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		hero: lipgloss.NewStyle().
			Padding(0, 2).
			Height(heroRows).
			MaxHeight(heroRows),

		title:     lipgloss.NewStyle().Foreground(green).Bold(true),
		body:      lipgloss.NewStyle(),
		muted:     lipgloss.NewStyle().Foreground(grey),
		button:    lipgloss.NewStyle().Foreground(gold).Underline(true),
		dot:       lipgloss.NewStyle().Foreground(grey),
		activeDot: lipgloss.NewStyle().Foreground(green).Bold(true),

		panel: lipgloss.NewStyle().
			Foreground(gold).
			Bold(true).
			Padding(0, 2),

		tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),

		cancelled: lipgloss.NewStyle().Strikethrough(true).Foreground(grey),
		footer:    lipgloss.NewStyle().Foreground(grey).Padding(0, 2),
		failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")),
	}
}

// # View

// View renders header, hero, notice panel and footer, top to bottom. The
// notice panel always starts at row noticeTop.
func (model Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		model.viewHeader(),
		model.viewHero(),
		model.styles.panel.Render("Notices"),
		model.viewNotices(),
		model.viewFooter(),
	)
}

func (model Model) viewHeader() string {
	name := model.site.Name
	if name == "" {
		name = "Masjid"
	}
	if model.site.Tagline != "" {
		name += "  ·  " + model.site.Tagline
	}
	return model.styles.header.Render(name)
}

func (model Model) viewHero() string {
	view, ok := model.hero.Render(model.options.Viewport)
	if !ok {
		return model.styles.hero.Render(model.styles.muted.Render("No announcements"))
	}

	lines := []string{
		model.styles.title.Render(view.Title),
		model.styles.body.Render(view.Description),
		model.styles.muted.Render(view.Image),
		model.viewButtons(view),
		model.viewDots(view),
	}
	return model.styles.hero.Render(strings.Join(lines, "\n"))
}

func (model Model) viewButtons(view rotation.HeroView) string {
	var buttons []string
	for _, action := range []rotation.Action{view.Primary, view.Secondary} {
		if target, ok := action.(rotation.NavigateTo); ok {
			buttons = append(buttons, model.styles.button.Render(target.URL))
		}
	}
	return strings.Join(buttons, "   ")
}

func (model Model) viewDots(view rotation.HeroView) string {
	dots := make([]string, view.Count)
	for i := range dots {
		if i == view.Index {
			dots[i] = model.styles.activeDot.Render("●")
		} else {
			dots[i] = model.styles.dot.Render("○")
		}
	}

	status := "playing"
	if view.IsPaused {
		status = "paused"
	}
	return strings.Join(dots, " ") + "  " + model.styles.muted.Render(fmt.Sprintf("%d/%d %s", view.Index+1, view.Count, status))
}

// viewNotices renders exactly noticeRows lines. Desktop shows the window of
// the tripled board at the current offset; mobile shows the static list.
func (model Model) viewNotices() string {
	board, ok := model.notices.Render()

	rows := make([]string, noticeRows)
	if ok {
		if board.AutoScroll {
			offset := board.ScrollOffset
			for i := range rows {
				if notice, found := model.notices.ItemAt(offset + float64(i)); found {
					rows[i] = model.viewNotice(notice)
				}
			}
		} else {
			for i, notice := range board.Items {
				if i == noticeRows {
					break
				}
				rows[i] = model.viewNotice(notice)
			}
		}
	} else {
		rows[0] = model.styles.muted.Render("No notices")
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(rows, "\n"))
}

func (model Model) viewNotice(notice rotation.Notice) string {
	tag := model.styles.tag.Background(lipgloss.Color(notice.TagColor)).Render(notice.Tag)

	title := notice.Title
	if notice.IsCancelled {
		title = model.styles.cancelled.Render(title) + model.styles.muted.Render(" (cancelled)")
	}

	line := model.styles.muted.Width(13).Render(notice.Date) + tag + " " + title
	if model.width > 4 {
		line = lipgloss.NewStyle().MaxWidth(model.width - 4).Render(line)
	}
	return line
}

func (model Model) viewFooter() string {
	help := "1-9 select  ←/→ browse  q quit"
	if model.notices.State().IsPaused {
		help += "  ·  notices paused"
	}
	if model.lastError != "" {
		help += "  ·  " + model.styles.failure.Render(model.lastError)
	}
	return model.styles.footer.Render(help)
}
