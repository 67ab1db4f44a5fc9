// Package terminal owns the tcell screen: setup, the event pump goroutine,
// color capability detection and crash-safe reset
package terminal
