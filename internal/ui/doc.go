// Package ui provides terminal output components: static tables and the
// yes/no confirmation prompt.
package ui
