// Package app wires runtime concerns for the CLI.
//
// It loads configuration (file, environment, defaults) and configures the
// global logger from it, exposing both via the App struct for commands to
// use. The cipher and attack packages stay free of configuration and
// logging; everything ambient lives here and in cmd.
package app
