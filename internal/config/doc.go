// Package config manages user-level settings stored at ~/.simplespec/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default install mode, the default runtime selection and telemetry opt-out.
package config
