package models

// ImportPhase tracks where a running import currently is. Phases are
// strictly sequential; later phases depend on the cross-reference map
// built by earlier ones.
type ImportPhase string

const (
	ImportPhaseNotStarted            ImportPhase = "not_started"
	ImportPhaseParsingFile           ImportPhase = "parsing_file"
	ImportPhaseExtractingMedia       ImportPhase = "extracting_media"
	ImportPhaseExtractingIndividuals ImportPhase = "extracting_individuals"
	ImportPhaseExtractingFamilies    ImportPhase = "extracting_families"
	ImportPhaseVerifyingReferences   ImportPhase = "verifying_references"
	ImportPhaseLinkingMedia          ImportPhase = "linking_media"
	ImportPhaseComplete              ImportPhase = "complete"
	ImportPhaseFailed                ImportPhase = "failed"
)

// ImportStats is the single report returned by an import run. Per-record
// failures accumulate in Errors, data-quality diagnostics in Warnings;
// only structural failures (unreadable file, no parseable records) abort
// the import itself.
type ImportStats struct {
	Individuals int `json:"individuals"`
	Families    int `json:"families"`
	Events      int `json:"events"`
	Media       int `json:"media"`

	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// AddError records a per-record failure.
func (s *ImportStats) AddError(msg string) {
	s.Errors = append(s.Errors, msg)
}

// AddWarning records a diagnostic that does not block the import.
func (s *ImportStats) AddWarning(msg string) {
	s.Warnings = append(s.Warnings, msg)
}
