package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// siteJSONSettings mirrors the site configuration file schema. It exists so
// the wire format can evolve independently of [Settings]; parseSiteSettings
// converts between the two.
type siteJSONSettings struct {
	ServerDefault              int                `json:"server_default"`
	ThemeDefault               string             `json:"theme_default"`
	DefaultLang                string             `json:"default_lang"`
	DefaultConnectionCollation string             `json:"default_connection_collation"`
	MaxRows                    int                `json:"max_rows"`
	TempDir                    string             `json:"temp_dir"`
	CheckConfigPermissions     *bool              `json:"check_config_permissions"`
	CookieSameSite             string             `json:"cookie_same_site"`
	CookieValidity             Duration           `json:"cookie_validity"`
	Servers                    []serverJSONConfig `json:"servers"`
}

type serverJSONConfig struct {
	Host                 string `json:"host"`
	Port                 int    `json:"port"`
	Socket               string `json:"socket"`
	Verbose              string `json:"verbose"`
	User                 string `json:"user"`
	Password             string `json:"password"`
	SSL                  bool   `json:"ssl"`
	Compress             bool   `json:"compress"`
	HideConnectionErrors bool   `json:"hide_connection_errors"`

	ControlHost                 string `json:"control_host"`
	ControlPort                 int    `json:"control_port"`
	ControlSocket               string `json:"control_socket"`
	ControlUser                 string `json:"control_user"`
	ControlPassword             string `json:"control_password"`
	ControlSSL                  *bool  `json:"control_ssl"`
	ControlCompress             *bool  `json:"control_compress"`
	ControlHideConnectionErrors *bool  `json:"control_hide_connection_errors"`
}

// parseSiteSettings decodes the site configuration file body into a partial
// [Settings] record. Unknown keys are rejected so a typo in the site file
// surfaces at load time instead of being silently ignored.
func parseSiteSettings(data []byte) (Settings, error) {
	var wire siteJSONSettings
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&wire); err != nil {
		return Settings{}, err
	}

	partial := Settings{
		ServerDefault:              wire.ServerDefault,
		ThemeDefault:               wire.ThemeDefault,
		DefaultLang:                wire.DefaultLang,
		DefaultConnectionCollation: wire.DefaultConnectionCollation,
		MaxRows:                    wire.MaxRows,
		TempDir:                    wire.TempDir,
		CheckConfigPermissions:     wire.CheckConfigPermissions,
		CookieSameSite:             wire.CookieSameSite,
		CookieValidity:             time.Duration(wire.CookieValidity),
	}

	if wire.Servers != nil {
		partial.Servers = make([]ServerSettings, len(wire.Servers))
		for i, srv := range wire.Servers {
			partial.Servers[i] = ServerSettings{
				Host:                 srv.Host,
				Port:                 srv.Port,
				Socket:               srv.Socket,
				Verbose:              srv.Verbose,
				User:                 srv.User,
				Password:             srv.Password,
				SSL:                  srv.SSL,
				Compress:             srv.Compress,
				HideConnectionErrors: srv.HideConnectionErrors,

				ControlHost:                 srv.ControlHost,
				ControlPort:                 srv.ControlPort,
				ControlSocket:               srv.ControlSocket,
				ControlUser:                 srv.ControlUser,
				ControlPassword:             srv.ControlPassword,
				ControlSSL:                  srv.ControlSSL,
				ControlCompress:             srv.ControlCompress,
				ControlHideConnectionErrors: srv.ControlHideConnectionErrors,
			}
		}
	}

	return partial, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// bootJSONConfig mirrors the optional JSON boot configuration file schema.
type bootJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Site struct {
		ConfigPath    string   `json:"config_path"`
		WatchInterval Duration `json:"watch_interval"`
	} `json:"site,omitempty"`
}

func parseBootJSON(jsonFilePath string) (*BootConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg bootJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &BootConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Site: Site{
			ConfigPath:    jsonCfg.Site.ConfigPath,
			WatchInterval: time.Duration(jsonCfg.Site.WatchInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
