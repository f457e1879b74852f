// Package internal contains the core infrastructure for the aui toolkit:
// logging, theming, box-layout arithmetic, icon and filter resolution, rich
// text reduction and small caches shared by the backends.
// Types and functions in this package are not part of the public API.
package internal
