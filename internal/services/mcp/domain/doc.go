// Package domain translates MCP tool calls into dice engine operations.
//
// Each tool parses its input into engine values (pools, die kinds, face
// indexes), runs the engine and returns a structured result that MCP clients
// can render. Input problems are reported as coded errors with a localized
// message.
package domain
