// models/export.go - Export/import envelope
package models

// ExportVersion is bumped when the payload shape changes
const ExportVersion = 1

type ExportEnvelope struct {
	Version   int           `json:"version"`
	Generated string        `json:"generated"`
	ExportID  string        `json:"exportId"`
	Payload   ExportPayload `json:"payload"`
}

type ExportPayload struct {
	Week  TargetsConfig `json:"week"`
	Month TargetsConfig `json:"month"`
}
