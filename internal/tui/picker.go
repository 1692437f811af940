// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"errors"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/shelf/internal/registry"
)

// ErrPickerFailed is returned when the terminal UI could not run.
var ErrPickerFailed = errors.New("failed to run picker")

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// scriptItem adapts a registry entry to the bubbles list item interface.
type scriptItem struct {
	alias  string
	script registry.Script
}

// Title implements list.DefaultItem.
func (i scriptItem) Title() string { return i.alias }

// Description implements list.DefaultItem.
func (i scriptItem) Description() string {
	if i.script.Note == "" {
		return i.script.Category
	}

	return i.script.Category + " · " + i.script.Note
}

// FilterValue implements list.Item.
func (i scriptItem) FilterValue() string {
	return i.alias + " " + i.script.Category + " " + i.script.Note
}

// PickerModel is a filterable list of registered scripts.
type PickerModel struct {
	list      list.Model
	selected  string
	cancelled bool
}

// NewPicker builds a picker over every script in the document, sorted by alias.
func NewPicker(doc registry.Document) PickerModel {
	aliases := make([]string, 0, len(doc.Scripts))
	for alias := range doc.Scripts {
		aliases = append(aliases, alias)
	}

	sort.Strings(aliases)

	items := make([]list.Item, 0, len(aliases))
	for _, alias := range aliases {
		items = append(items, scriptItem{alias: alias, script: doc.Scripts[alias]})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "shelf"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	return PickerModel{list: l}
}

// Selected returns the chosen alias, if any.
func (m PickerModel) Selected() (string, bool) {
	return m.selected, m.selected != "" && !m.cancelled
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Don't intercept keys while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(scriptItem); ok {
				m.selected = item.alias
			}

			return m, tea.Quit

		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	return m.list.View()
}

// Pick runs the picker and returns the selected alias.
// The second return is false when the user cancelled or nothing was selected.
func Pick(doc registry.Document) (string, bool, error) {
	p := tea.NewProgram(NewPicker(doc), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, errors.Join(ErrPickerFailed, err)
	}

	model, ok := final.(PickerModel)
	if !ok {
		return "", false, nil
	}

	alias, ok := model.Selected()

	return alias, ok, nil
}
