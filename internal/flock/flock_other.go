//go:build !unix

package flock

// Advisory locking is unavailable on this platform; the guard degrades
// to a plain open file and duplicate instances are not detected.

func Exclusive(_ uintptr) error { return nil }

func Unlock(_ uintptr) error { return nil }
