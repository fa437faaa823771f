// Package commands implements the vectool CLI commands.
package commands
