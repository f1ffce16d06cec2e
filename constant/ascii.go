package constant

import _ "embed"

// AsciiArtLogo is the banner shown on the root help screen, embedded at
// compile time.
//
//go:embed ascii.txt
var AsciiArtLogo string
