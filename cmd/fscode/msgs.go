package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Batch rename, copy and delete files by editing a table"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgConfigLong      = "Config prints the merged configuration: built-in defaults, the user config file, and FSCODE_* environment overrides."
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Status messages
	MsgNoOperations   = "No operations needed."
	MsgDryRunNotice   = "DRY RUN MODE - nothing was written"
	MsgScriptWritten = "Wrote %d operation(s) to %s"
	MsgReviewAndRun  = "Review the script, then run it with: sh %s"
	MsgNoPathsGiven  = "no paths given: pass them as arguments or pipe them on stdin"
	MsgDuplicatePath = "duplicate input path %q"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun       = "Preview the plan without writing the script"
	MsgFlagEditor       = "Editor command (overrides config, $VISUAL and $EDITOR)"
	MsgFlagOutput       = "Path of the generated script"
	MsgFlagExchange     = "Break rename cycles with atomic exchanges (mv --exchange)"
	MsgFlagTempTemplate = "Base name for temporary detour paths"
	MsgFlagPrefix       = "Prefix prepended to every generated command (e.g. sudo)"
)

const MsgRootLong = `fscode turns a batch of renames, copies and deletions into a reviewed
shell script.

It assigns an ID to every path you give it, opens the ID/path table in
your editor, and reads your edits back:

  - change a path        the file is moved there
  - repeat an ID         extra rows become copies
  - delete a row         the file is removed
  - add a row with ID 0  a new file (or symlink, with a target argument)

fscode orders the resulting operations so nothing is overwritten, breaks
rename cycles safely, and writes the commands to a script for review.
Nothing touches the filesystem until you run that script.`
