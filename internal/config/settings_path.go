package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// User-settable setting paths. Paths use the wire names of the schema so a
// stored override round-trips unchanged through JSON.
const (
	PathThemeDefault               = "theme_default"
	PathDefaultLang                = "default_lang"
	PathDefaultConnectionCollation = "default_connection_collation"
	PathMaxRows                    = "max_rows"
	PathServerDefault              = "server_default"
	PathCookieSameSite             = "cookie_same_site"
	PathCookieValidity             = "cookie_validity"
)

// UserSettablePaths returns the setting paths a user override may carry, in
// a stable order.
func UserSettablePaths() []string {
	return []string{
		PathThemeDefault,
		PathDefaultLang,
		PathDefaultConnectionCollation,
		PathMaxRows,
		PathServerDefault,
		PathCookieSameSite,
		PathCookieValidity,
	}
}

// Value returns the value of one named setting, or false when the path is
// not part of the user-settable schema.
func (s *Settings) Value(path string) (any, bool) {
	switch path {
	case PathThemeDefault:
		return s.ThemeDefault, true
	case PathDefaultLang:
		return s.DefaultLang, true
	case PathDefaultConnectionCollation:
		return s.DefaultConnectionCollation, true
	case PathMaxRows:
		return s.MaxRows, true
	case PathServerDefault:
		return s.ServerDefault, true
	case PathCookieSameSite:
		return s.CookieSameSite, true
	case PathCookieValidity:
		return s.CookieValidity, true
	default:
		return nil, false
	}
}

// SetValue sets one named setting from a dynamically typed value, converting
// JSON-decoded representations (float64 numbers, duration strings) to the
// schema type. Unknown paths return [ErrUnknownSettingPath]; values of the
// wrong shape return [ErrInvalidSettingValue].
func (s *Settings) SetValue(path string, value any) error {
	switch path {
	case PathThemeDefault:
		return setString(&s.ThemeDefault, path, value)
	case PathDefaultLang:
		return setString(&s.DefaultLang, path, value)
	case PathDefaultConnectionCollation:
		return setString(&s.DefaultConnectionCollation, path, value)
	case PathMaxRows:
		return setInt(&s.MaxRows, path, value)
	case PathServerDefault:
		return setInt(&s.ServerDefault, path, value)
	case PathCookieSameSite:
		return setString(&s.CookieSameSite, path, value)
	case PathCookieValidity:
		return setDuration(&s.CookieValidity, path, value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSettingPath, path)
	}
}

func setString(dst *string, path string, value any) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %q expects a string", ErrInvalidSettingValue, path)
	}
	*dst = v
	return nil
}

func setInt(dst *int, path string, value any) error {
	switch v := value.(type) {
	case int:
		*dst = v
	case int64:
		*dst = int(v)
	case float64:
		*dst = int(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return fmt.Errorf("%w: %q expects an integer", ErrInvalidSettingValue, path)
		}
		*dst = int(n)
	default:
		return fmt.Errorf("%w: %q expects an integer", ErrInvalidSettingValue, path)
	}
	return nil
}

func setDuration(dst *time.Duration, path string, value any) error {
	switch v := value.(type) {
	case time.Duration:
		*dst = v
	case float64:
		*dst = time.Duration(v)
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %q expects a duration", ErrInvalidSettingValue, path)
		}
		*dst = d
	default:
		return fmt.Errorf("%w: %q expects a duration", ErrInvalidSettingValue, path)
	}
	return nil
}
