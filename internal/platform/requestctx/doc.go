// Package requestctx carries per-request values through context.
package requestctx
