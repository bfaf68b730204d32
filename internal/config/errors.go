package config

import "github.com/cockroachdb/errors"

var (
	// ErrUnsupportedFormat indicates a config path whose extension is not
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid marks every failure reported by Config.Validate.
	ErrInvalid = errors.New("config: invalid")

	// ErrUnknownProfile indicates a profile name that is not in Profiles.
	ErrUnknownProfile = errors.New("config: unknown profile")
)
