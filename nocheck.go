//go:build !pathcheck

package path

// See check.go.
const debugChecks = false
