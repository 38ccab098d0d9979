// Package config loads the demo server's toastkit.json configuration.
package config
