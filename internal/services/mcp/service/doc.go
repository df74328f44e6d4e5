// Package service wires protocol transport to the content tools.
//
// It knows how to run MCP over stdio and delegates tool behavior to the
// domain package.
package service
