package application

import "hidenb/internal/domain"

// Re-export domain types for use by adapters
type (
	Folder       = domain.Folder
	FolderRow    = domain.FolderRow
	Note         = domain.Note
	HiddenSet    = domain.HiddenSet
	DisplayFlags = domain.DisplayFlags
)

// TrashFolderID is the host's reserved Trash id
const TrashFolderID = domain.TrashFolderID

// LastNotebookNotice is shown when a hide request is refused
const LastNotebookNotice = "Last notebook can't be hidden!"

// ShowHiddenPrompt asks before every hidden notebook is revealed
const ShowHiddenPrompt = "Are you sure you want to unhide all hidden notebooks?"

// Setting keys
const (
	SettingHiddenNotebookIDs = domain.SettingHiddenNotebookIDs
	SettingShowAllNotes      = domain.SettingShowAllNotes
	SettingShowTrash         = domain.SettingShowTrash
)
