// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// VIEW TESTS
// =============================================================================

func TestParseView(t *testing.T) {
	tests := []struct {
		in   string
		want View
	}{
		{"LANDING", ViewLanding},
		{"login", ViewLogin},
		{"Dashboard", ViewDashboard},
		{" tools ", ViewTools},
		{"plans", ViewPlans},
		{"SETTINGS", ViewSettings},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseView(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseView_Unknown(t *testing.T) {
	_, err := ParseView("billing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownView))
}

func TestView_StringAndKey(t *testing.T) {
	assert.Equal(t, "CHAT", ViewChat.String())
	assert.Equal(t, "chat", ViewChat.Key())
	assert.Equal(t, "View(42)", View(42).String())
	assert.False(t, View(-1).Valid())
	assert.Len(t, AllViews(), 9)
}

func TestView_TextRoundTrip(t *testing.T) {
	for _, v := range AllViews() {
		b, err := v.MarshalText()
		require.NoError(t, err)
		var back View
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, v, back)
	}
	_, err := View(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownView)
}

// =============================================================================
// LANGUAGE TESTS
// =============================================================================

func TestLanguage_Direction(t *testing.T) {
	assert.Equal(t, RTL, LangArabic.Direction())
	assert.Equal(t, LTR, LangEnglish.Direction())
	assert.True(t, LangArabic.IsRTL())
	assert.False(t, LangEnglish.IsRTL())
}

func TestLanguage_Toggle(t *testing.T) {
	assert.Equal(t, LangEnglish, LangArabic.Toggle())
	assert.Equal(t, LangArabic, LangEnglish.Toggle())
	assert.Equal(t, LangArabic, LangArabic.Toggle().Toggle())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "ar", want: LangArabic},
		{in: "EN", want: LangEnglish},
		{in: "en-US", want: LangEnglish},
		{in: "en_GB.UTF-8", want: LangEnglish},
		{in: "ar-SA", want: LangArabic},
		{in: "", want: LangArabic, wantErr: true},
		{in: "not a tag!", want: LangArabic, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLanguage(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

// =============================================================================
// TURN AND STATE TESTS
// =============================================================================

func TestNewTurn(t *testing.T) {
	a := NewTurn(RoleUser, "hello")
	b := NewTurn(RoleAssistant, "hi there")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, RoleUser, a.Role)
	assert.Equal(t, "hello", a.Text)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestTurn_Preview(t *testing.T) {
	turn := Turn{Text: "مرحباً بكم في زمام"}
	assert.Equal(t, "مرحباً...", turn.Preview(9))
	assert.Equal(t, turn.Text, turn.Preview(100))
}

func TestRole_DisplayName(t *testing.T) {
	assert.Equal(t, "You", RoleUser.DisplayName())
	assert.Equal(t, "Zamam AI", RoleAssistant.DisplayName())
}

func TestMockUser(t *testing.T) {
	u := MockUser()
	assert.Equal(t, "user@zamam.ai", u.Email)
	assert.Equal(t, "Zamam User", u.Name)
	assert.NotSame(t, u, MockUser())

	assert.False(t, State{}.LoggedIn())
	assert.True(t, State{User: u}.LoggedIn())
}

func TestText_In(t *testing.T) {
	txt := Text{Ar: "أدوات", En: "Tools"}
	assert.Equal(t, "أدوات", txt.In(LangArabic))
	assert.Equal(t, "Tools", txt.In(LangEnglish))
	assert.Equal(t, "أدوات", Text{Ar: "أدوات"}.In(LangEnglish))

	list := TextList{Ar: []string{"أ"}, En: []string{"a"}}
	assert.Equal(t, []string{"a"}, list.In(LangEnglish))
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategoryAnalysis.Valid())
	assert.True(t, CategoryVideo.Valid())
	assert.False(t, Category("music").Valid())
}
