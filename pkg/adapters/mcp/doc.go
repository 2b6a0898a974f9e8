// Package mcp serves the word generator and the alphabet tables over the Model
// Context Protocol, so agents can produce typed words without running the CLI.
package mcp
