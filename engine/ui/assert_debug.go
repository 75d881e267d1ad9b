//go:build debug

package ui

func contractViolation(err error) { panic(err) }
