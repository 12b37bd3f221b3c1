// Package cmd implements the calltrace subcommands: demo, resolve and init.
//
// Commands read the parsed [kong.Context] and the attachment files from the
// [context.Context] they are run with; see [WithContext] and
// [WithAttachFiles]. Their output goes to the kong context's Stdout.
package cmd

var (
	// AttachIdentifier is the kong variable identifier containing the path to
	// the default attachment document.
	AttachIdentifier = "attach"

	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the flag defaults file.
	ConfigIdentifier = "config"
)
