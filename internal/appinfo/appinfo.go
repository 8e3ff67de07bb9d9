// Package appinfo provides application identity constants used across
// packages for consistent naming.
package appinfo

// AppName is the display name of the application.
const AppName = "Drashta"
