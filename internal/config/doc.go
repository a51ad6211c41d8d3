// Package config loads the startup settings of the slogger command from
// an optional config file, a .env file and SLOGGER_* environment
// variables. It is read once at startup; a running Logger is never
// reconfigured from it.
package config
