package domain

// SkillSource identifies which directory a skill was discovered in.
type SkillSource string

// Skill source constants. Only workspace skills are mutable.
const (
	SkillSourceBundled   SkillSource = "bundled"
	SkillSourceManaged   SkillSource = "managed"
	SkillSourceWorkspace SkillSource = "workspace"
)

// Skill is an agent capability discovered from a skill directory.
type Skill struct {
	// ID is the skill directory name.
	ID string `json:"id"`

	// Name comes from SKILL.md frontmatter, falling back to the ID.
	Name string `json:"name"`

	// Description comes from SKILL.md frontmatter.
	Description string `json:"description"`

	// Source is the directory tier the skill was found in.
	Source SkillSource `json:"source"`

	// Enabled reflects the shared configuration document; defaults true.
	Enabled bool `json:"enabled"`

	// Path is the absolute skill directory path.
	Path string `json:"path"`

	// HasMetadata reports whether SKILL.md carried parseable frontmatter.
	HasMetadata bool `json:"hasMetadata"`
}

// SkillCreate is the payload for creating a workspace skill.
type SkillCreate struct {
	Name         string `json:"name" validate:"required,excludes=/,excludes=.."`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}
