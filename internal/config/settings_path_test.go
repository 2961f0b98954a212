package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValue_KnownPaths(t *testing.T) {
	// Arrange
	s := DefaultSettings()
	s.MaxRows = 100

	tests := []struct {
		path string
		want any
	}{
		{path: PathThemeDefault, want: "pmahomme"},
		{path: PathDefaultLang, want: "en"},
		{path: PathMaxRows, want: 100},
		{path: PathServerDefault, want: 0},
		{path: PathCookieValidity, want: 30 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			// Act
			got, ok := s.Value(tt.path)

			// Assert
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsValue_UnknownPath(t *testing.T) {
	// Arrange
	s := DefaultSettings()

	// Act
	_, ok := s.Value("no_such_setting")

	// Assert
	assert.False(t, ok)
}

func TestSettingsSetValue(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value any
		want  any
	}{
		{name: "string", path: PathThemeDefault, value: "original", want: "original"},
		{name: "int", path: PathMaxRows, value: 50, want: 50},
		{name: "int from float64", path: PathMaxRows, value: float64(50), want: 50},
		{name: "int from json.Number", path: PathServerDefault, value: json.Number("2"), want: 2},
		{name: "duration", path: PathCookieValidity, value: time.Hour, want: time.Hour},
		{name: "duration from string", path: PathCookieValidity, value: "24h", want: 24 * time.Hour},
		{name: "duration from float64", path: PathCookieValidity, value: float64(time.Minute), want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			s := DefaultSettings()

			// Act
			err := s.SetValue(tt.path, tt.value)

			// Assert
			require.NoError(t, err)
			got, ok := s.Value(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsSetValue_UnknownPath(t *testing.T) {
	// Arrange
	s := DefaultSettings()

	// Act
	err := s.SetValue("no_such_setting", "x")

	// Assert
	require.ErrorIs(t, err, ErrUnknownSettingPath)
}

func TestSettingsSetValue_WrongShape(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value any
	}{
		{name: "int for string path", path: PathThemeDefault, value: 1},
		{name: "string for int path", path: PathMaxRows, value: "fifty"},
		{name: "bad duration string", path: PathCookieValidity, value: "soon"},
		{name: "bool for duration path", path: PathCookieValidity, value: true},
		{name: "fractional json.Number", path: PathMaxRows, value: json.Number("1.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			s := DefaultSettings()

			// Act
			err := s.SetValue(tt.path, tt.value)

			// Assert
			require.ErrorIs(t, err, ErrInvalidSettingValue)
		})
	}
}
