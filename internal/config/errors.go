package config

import "errors"

// Errors surfaced by the site configuration loader. All three abort
// configuration bootstrap; everything else in this package is normal
// control flow.
var (
	// ErrConfigUnreadable indicates the site configuration file exists but
	// could not be read (permissions or another I/O fault).
	ErrConfigUnreadable = errors.New("site configuration file is not readable")
	// ErrConfigLoadFailed indicates the site configuration file was read but
	// its contents could not be evaluated.
	ErrConfigLoadFailed = errors.New("error loading site configuration file")
	// ErrInsecurePermissions indicates the site configuration file is group
	// or world writable while the permission check is enabled.
	ErrInsecurePermissions = errors.New("site configuration file has insecure permissions")
)

// Errors returned by settings path accessors.
var (
	// ErrUnknownSettingPath indicates the requested setting name is not part
	// of the user-settable schema.
	ErrUnknownSettingPath = errors.New("unknown setting path")
	// ErrInvalidSettingValue indicates the supplied value cannot be converted
	// to the setting's type.
	ErrInvalidSettingValue = errors.New("invalid value for setting")
)

// Validation errors returned by [BootConfig.validate].
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN when configuration storage is enabled).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
