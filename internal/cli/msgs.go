package cli

// Message constants
const (
	MsgRootShort = "Manage MCP server configuration fragments"
	MsgRootLong  = `mcpconf manages a catalog of MCP server configuration fragments. Fragments
are staged in an available collection, selectively enabled, and combined into
a single claude_desktop_config.json consumed by the MCP host application.

The previous combined configuration is backed up automatically before it is
overwritten.`

	MsgFlagDir     = "Base directory for the configuration catalog"
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput  = "Output format: plain, table, json or yaml"

	MsgAddShort = "Stage a JSON configuration fragment"
	MsgAddLong  = `Validates that the given file contains well-formed JSON and copies it into
the available collection under its base name.`

	MsgEnableShort = "Enable an available fragment"
	MsgEnableLong  = `Copies a fragment from the available collection into the active collection.
Enabling an already-active fragment overwrites it.`

	MsgDisableShort = "Disable an active fragment"
	MsgDisableLong  = `Removes a fragment from the active collection. The fragment stays in the
available collection and can be enabled again later.`

	MsgListShort = "List available and active fragments"

	MsgCombineShort = "Combine the active fragments"
	MsgCombineLong  = `Deep-merges every active fragment, in lexicographic filename order, into the
combined configuration document. The previous combined document is backed up
first. Fragments enabled later win on conflicting scalar values; lists are
concatenated.`

	MsgShowShort = "Print the combined configuration"

	MsgBackupShort = "Back up the combined configuration"
	MsgBackupLong  = `Copies the current combined configuration into the backups directory under a
timestamped name. Does nothing when no combined configuration exists.`

	MsgVersionShort = "Print version information"

	MsgAddSuccess     = "Configuration %s was added to the available configurations."
	MsgEnableSuccess  = "Configuration %s was enabled."
	MsgDisableSuccess = "Configuration %s was disabled."
	MsgCombineSuccess = "Configurations were combined into %s."
	MsgCombineBackup  = "Previous configuration backed up as %s."
	MsgBackupSuccess  = "Backup created: %s"
	MsgBackupNone     = "No combined configuration exists to back up."
	MsgListAvailable  = "Available configurations:"
	MsgListActive     = "Active configurations:"
	MsgListEmpty      = "  (none)"
)
