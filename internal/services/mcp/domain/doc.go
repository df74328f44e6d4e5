// Package domain translates MCP tool calls into read-only content queries.
//
// Each tool validates its input, builds a cms.Query and returns a structured
// result that MCP clients can render.
package domain
