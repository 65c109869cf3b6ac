package araignee

import _ "embed"

// Version is the release of the library and of the araignee command.
//
//go:embed VERSION
var Version string
