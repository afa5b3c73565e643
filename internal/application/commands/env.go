package commands

import (
	"hidenb/internal/application"
	"hidenb/internal/ports"
)

// Env bundles the collaborators every command needs
type Env struct {
	Settings   *application.Settings
	Data       ports.DataSource
	Dialogs    ports.Dialogs
	Stylesheet *application.Stylesheet
}
