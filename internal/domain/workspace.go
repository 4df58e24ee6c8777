package domain

// WorkspaceFile is the live content of a named workspace document.
type WorkspaceFile struct {
	// Content is the raw text of the file.
	Content string `json:"content"`

	// LastModified is the filesystem modification time in RFC 3339,
	// empty when the file does not exist yet.
	LastModified string `json:"lastModified,omitempty"`
}

// HistoryEntry is one captured prior state of a workspace file.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}

// SoulTemplate is a named persona preset offered as starting content
// for the workspace-file editor.
type SoulTemplate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}
