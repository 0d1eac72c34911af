// Package paths resolves every directory the mod tools work with.
//
// Each directory follows the same precedence: an explicit, non-empty user
// setting wins, otherwise a deterministic derivation is used:
//
//	AppData    setting | parent(parent(Mods setting)) | $LOCALAPPDATA/Whiskerwood
//	Mods       setting | <AppData>/Saved/mods
//	Logs       setting | <AppData>/Saved/Logs
//	TempDeploy setting | <AppData>/TempWorkshop
//	Pak        setting | directory of the first pakchunk*-*.pak under Project
//
// AppData and Mods stay mutually derivable: setting either one is enough
// to recover the other. When LOCALAPPDATA is unset the AppData root falls
// back to a directory inside the project.
//
// All returned paths are normalized with Normalize (forward slashes, no
// trailing separator).
package paths
