// Package diagnostic records notes collected while resolving a locale:
// characters that produced no constant, entries removed by deduplication,
// and the error that stopped a locale.
package diagnostic
