package endpoints

import (
	"github.com/jackzampolin/docreview/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health
		&HealthEndpoint{},

		// Review session
		&ReviewStatusEndpoint{},
		&ApproveEndpoint{},
		&RevertEndpoint{},
		&NextPageEndpoint{},
		&PrevPageEndpoint{},
		&FinishEndpoint{},
		&KeyPressEndpoint{},

		// Pages and records
		&ListPagesEndpoint{},
		&GetPageEndpoint{},
		&PageImageEndpoint{},
		&SelectPageEndpoint{},
		&UpdateFieldEndpoint{},

		// Export
		&DownloadExportEndpoint{},
		&SaveExportEndpoint{},

		// Session metadata
		&SchemaEndpoint{},
		&KeymapEndpoint{},

		// Settings
		&ListSettingsEndpoint{},
		&GetSettingEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{},
		&SwaggerUIEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}

// ReviewCommands returns endpoints grouped under "review".
func ReviewCommands() []api.Endpoint {
	return []api.Endpoint{
		&ReviewStatusEndpoint{},
		&ApproveEndpoint{},
		&RevertEndpoint{},
		&NextPageEndpoint{},
		&PrevPageEndpoint{},
		&FinishEndpoint{},
		&KeyPressEndpoint{},
		&SchemaEndpoint{},
		&KeymapEndpoint{},
	}
}

// PageCommands returns endpoints grouped under "pages".
func PageCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListPagesEndpoint{},
		&GetPageEndpoint{},
		&PageImageEndpoint{},
		&SelectPageEndpoint{},
	}
}

// RecordCommands returns endpoints grouped under "records".
func RecordCommands() []api.Endpoint {
	return []api.Endpoint{
		&UpdateFieldEndpoint{},
	}
}

// ExportCommands returns endpoints grouped under "export".
func ExportCommands() []api.Endpoint {
	return []api.Endpoint{
		&DownloadExportEndpoint{},
		&SaveExportEndpoint{},
	}
}

// SettingsCommands returns endpoints grouped under "settings".
func SettingsCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListSettingsEndpoint{},
		&GetSettingEndpoint{},
	}
}
