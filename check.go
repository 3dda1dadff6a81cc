//go:build pathcheck

package path

// debugChecks gates the finite-coordinate assertions in the builder. Go has
// no debug/release build axis, so the checks are compiled in only under the
// pathcheck build tag; without it, non-finite coordinates propagate into the
// path unchecked. Whether the checks should instead be unconditional is a
// policy trade-off between cost and robustness; run tests with -tags
// pathcheck to get the checked configuration.
const debugChecks = true
