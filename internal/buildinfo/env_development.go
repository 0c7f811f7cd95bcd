//go:build !production

package buildinfo

var environment = development
