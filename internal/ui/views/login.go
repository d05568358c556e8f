// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldSubmit
	fieldCount
)

var loginKeys = struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Back   key.Binding
}{
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "login")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

// Login is the sign-in form. Authentication is simulated: any input,
// including empty fields, signs in the mock user.
type Login struct {
	env    *Env
	inputs [2]textinput.Model
	focus  int
}

// NewLogin creates the login form.
func NewLogin(env *Env) *Login {
	email := textinput.New()
	email.Prompt = ""
	email.CharLimit = 254
	email.Placeholder = "user@zamam.ai"

	password := textinput.New()
	password.Prompt = ""
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return &Login{env: env, inputs: [2]textinput.Model{email, password}}
}

func (p *Login) Capturing() bool { return true }

// Enter clears the form and focuses the email field.
func (p *Login) Enter() tea.Cmd {
	for i := range p.inputs {
		p.inputs[i].Reset()
	}
	p.Layout()
	return p.setFocus(fieldEmail)
}

// Layout sizes the input fields.
func (p *Login) Layout() {
	w := p.fieldWidth()
	for i := range p.inputs {
		p.inputs[i].Width = w
	}
}

func (p *Login) fieldWidth() int {
	w := p.env.Width/2 - 8
	if w < 16 {
		w = 16
	}
	if w > 48 {
		w = 48
	}
	return w
}

func (p *Login) setFocus(i int) tea.Cmd {
	p.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range p.inputs {
		if j == p.focus {
			cmd = p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
	return cmd
}

// Credentials returns what has been typed so far.
func (p *Login) Credentials() model.Credentials {
	return model.Credentials{
		Email:    p.inputs[fieldEmail].Value(),
		Password: p.inputs[fieldPassword].Value(),
	}
}

// Update moves focus between the fields and submits the form.
func (p *Login) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, loginKeys.Back):
			p.env.Session.Navigate(model.ViewLanding)
			return nil
		case key.Matches(msg, loginKeys.Next):
			return p.setFocus(p.focus + 1)
		case key.Matches(msg, loginKeys.Prev):
			return p.setFocus(p.focus - 1)
		case key.Matches(msg, loginKeys.Submit):
			if p.focus == fieldEmail {
				return p.setFocus(fieldPassword)
			}
			p.env.Session.Login(p.Credentials())
			return nil
		}
	}

	if p.focus >= len(p.inputs) {
		return nil
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return cmd
}

// View renders the form inside a bordered panel.
func (p *Login) View() string {
	e, t := p.env, p.env.Theme
	align := styles.Align(e.RTL())
	w := p.fieldWidth() + t.Input.GetHorizontalFrameSize()

	field := func(i int, label string) string {
		box := t.Input
		if p.focus == i {
			box = t.InputActive
		}
		return lipgloss.JoinVertical(align,
			t.FieldLabel.Render(label),
			box.Width(w-t.Input.GetHorizontalBorderSize()).Render(p.inputs[i].View()),
		)
	}

	submit := t.Button.Render(e.T("login"))
	if p.focus == fieldSubmit {
		submit = t.ButtonPrimary.Render(e.T("login"))
	}

	form := lipgloss.JoinVertical(align,
		t.PanelTitle.Render(e.T("login")),
		t.Muted.Render(e.T("appName")),
		"",
		field(fieldEmail, e.T("email")),
		field(fieldPassword, e.T("password")),
		"",
		lipgloss.PlaceHorizontal(w, lipgloss.Center, submit),
	)
	return lipgloss.Place(e.Width, e.Height, lipgloss.Center, lipgloss.Center, t.Panel.Render(form))
}
