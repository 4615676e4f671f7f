//go:build !amd64

package helpers

// The SWAR fold is plain integer arithmetic, profitable everywhere.
const useWideFold = true
