//go:build !vectordebug

package assert

const Enabled = false
