//go:build !safeseq_release

package checked

const defaultUseBeforeSetChecks = true
