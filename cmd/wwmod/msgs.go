package wwmod

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Deploy Whiskerwood mods from a project tree"
	MsgStatusShort     = "Show the deployment status of every mod"
	MsgShowShort       = "Show everything known about one mod"
	MsgMoveShort       = "Copy a mod's cooked pak into the mods folder"
	MsgRemoveShort     = "Delete a mod's folder from the mods folder"
	MsgStageShort      = "Stage a moved mod for workshop upload"
	MsgPackageShort    = "Cook and package the project with the automation tool"
	MsgMigrateShort    = "Persist legacy chunk ids into mod rules"
	MsgNewShort        = "Create a new mod descriptor file"
	MsgPathsShort      = "Show every resolved directory"
	MsgPathsEnsure     = "Create the temp deploy directory and save it to settings"
	MsgLogsShort       = "Manage and follow watched log files"
	MsgLogsAddShort    = "Watch a new log file"
	MsgLogsListShort   = "List watched log files"
	MsgLogsEnableShort = "Enable a watched log file"
	MsgLogsDisable     = "Disable a watched log file"
	MsgLogsWatchShort  = "Print new lines of every enabled log file until interrupted"
	MsgConfigShort     = "Inspect and create the settings file"
	MsgConfigInitShort = "Write a commented settings template"
	MsgConfigShowShort = "Show the effective settings"
	MsgConfigPathShort = "Print the settings file path"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgRemoved       = "Removed %s"
	MsgStaged        = "Staged %s in %s"
	MsgPackaged      = "Packaging finished"
	MsgNoMigrations  = "No legacy chunk ids to migrate"
	MsgMigrated      = "Migrated %s (chunk %d)"
	MsgCreated       = "Created %s"
	MsgTempDeploy    = "Temp deploy directory ready: %s"
	MsgLogAdded      = "Watching %s as %s"
	MsgLogEnabled    = "Enabled %s"
	MsgLogDisabled   = "Disabled %s"
	MsgWatching      = "Watching %d log file(s), press Ctrl-C to stop"
	MsgConfigWritten = "Wrote settings template to %s"
	MsgVersionFormat = "wwmod version %s\n  commit: %s\n  built:  %s"
	MsgNoEnabledLogs = "No enabled log files to watch"
	MsgAlreadyMoved  = "mod '%s' is already moved, remove it first"
	MsgNoSubcommand  = "no command specified"
	MsgLogIDExists   = "log id '%s' already exists"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Settings file (default is <config home>/wwmod/settings.toml)"
	MsgFlagFormat   = "Output format: auto, term, text, json, yaml"
	MsgFlagProject  = "Project directory, overriding the settings file"
	MsgFlagTool     = "Automation tool script, overriding <engine>/Build/BatchFiles/RunUAT"
	MsgFlagForce    = "Overwrite an existing file"
	MsgFlagDir      = "Directory for the new descriptor file (default is the project directory)"
	MsgFlagDirName  = "Folder name under the mods root"
	MsgFlagChunk    = "Chunk id for the mod rules"
	MsgFlagDesc     = "Mod description"
	MsgFlagAuthor   = "Mod author"
	MsgFlagLogID    = "Id of the watch entry (default is a generated uuid)"
	MsgFlagLogName  = "Display name printed before each line"
	MsgFlagDisabled = "Add the entry disabled"
	MsgFlagGame     = "Also follow the game log for this session"
	MsgFlagInterval = "Poll interval"
)

// Long messages
const (
	MsgRootLong = `wwmod takes mods authored in a Whiskerwood project tree through the
deployment pipeline: it finds each mod's cooked pak by chunk id, copies it
into the game's mods folder next to a generated descriptor, stages moved
mods for workshop upload and removes them again.

Every write is refused unless the target path contains "whiskerwood".`

	MsgStatusLong = `Status evaluates every *.wwmod.toml under the project directory and
prints its chunk id, deployment state and the actions that state allows.

States:
  Missing ChunkID               no chunk id could be resolved
  No Pak Found                  no pakchunk<N>-*.pak exists under the project
  Ready to be Moved             the pak exists and the mod is not moved
  Moved | Ready for Deploy      moved and a publish app id is configured
  Moved | Steam Not Configured  moved without a publish app id`

	MsgMoveLong = `Move locates pakchunk<N>-*.pak for the mod's chunk id, copies it to
<mods>/<dir>/<dir>.pak and writes <mods>/<dir>/<dir>.uplugin.`

	MsgPackageLong = `Package runs the engine automation tool with BuildCookRun for the
project's .uproject file and waits for it to exit.`

	MsgLogsWatchLong = `Watch polls every enabled log file and prints the lines appended since
the previous poll. The first poll of a file only records its length. A file
that shrinks is treated as rotated.`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(wwmod completion bash)

Zsh:
  $ wwmod completion zsh > "${fpath[1]}/_wwmod"

Fish:
  $ wwmod completion fish | source

PowerShell:
  PS> wwmod completion powershell | Out-String | Invoke-Expression`
)

// Examples
const (
	MsgStatusExample = `  wwmod status
  wwmod status --format json`
	MsgMoveExample = `  wwmod move PAL_MoreWhiskers
  wwmod move "More Whiskers"`
	MsgNewExample  = `  wwmod new PAL_MoreWhiskers --dir-name MoreWhiskers --chunk 12`
	MsgLogsExample = `  wwmod logs add ~/Saved/Logs/Editor.log --name Editor
  wwmod logs watch --game`
)

// MsgUsageTemplate is the custom usage template
const MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Commands"}}:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold $group.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
