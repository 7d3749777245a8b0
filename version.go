package trinomial

import _ "embed"

// Version is the release of this module, shared by the CLI, HTTP /info and the MCP server.
//
//go:embed VERSION
var Version string
