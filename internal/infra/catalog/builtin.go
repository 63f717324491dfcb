package catalog

import _ "embed"

// builtinCatalog is the tool registry shipped with the binary. It is
// the source of truth when no --catalog file is given.
//
//go:embed catalog.yaml
var builtinCatalog []byte
