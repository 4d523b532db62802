package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Sheets configures the Google Sheets backing store. CredentialsFile
// wins over CredentialsJSON; when both are empty the client falls back
// to Application Default Credentials.
type Sheets struct {
	SpreadsheetID   string
	Worksheet       string
	CredentialsFile string
	CredentialsJSON string
}

func getSheetsConfig(v *viper.Viper) *Sheets {
	worksheet := strings.TrimSpace(v.GetString("sheets.worksheet"))
	if worksheet == "" {
		worksheet = "todos"
	}
	return &Sheets{
		SpreadsheetID:   strings.TrimSpace(v.GetString("sheets.spreadsheet_id")),
		Worksheet:       worksheet,
		CredentialsFile: v.GetString("sheets.credentials_file"),
		CredentialsJSON: v.GetString("sheets.credentials_json"),
	}
}
