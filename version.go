package satchel

import _ "embed"

// Version exposes the version of the library.
//
//go:embed version.txt
var Version string
