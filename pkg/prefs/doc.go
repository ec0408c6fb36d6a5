// Package prefs stores per-user UI preferences.
package prefs
