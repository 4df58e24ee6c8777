// Package skill discovers agent skills across the bundled, managed, and
// workspace skill directories and manages their lifecycle. A skill is a
// directory whose SKILL.md carries YAML frontmatter with a name and
// description; enablement state lives in the shared gateway
// configuration, not on disk.
package skill

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/warroom/internal/constants"
	"github.com/mrz1836/warroom/internal/domain"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
)

// EnablementConfig is the slice of the shared gateway configuration the
// skill manager needs.
type EnablementConfig interface {
	SkillEnabled(skillID string) bool
	SetSkillEnabled(skillID string, enabled bool) error
}

// Manager discovers and manages skills.
type Manager struct {
	fs   afero.Fs
	dirs []sourceDir
	cfg  EnablementConfig

	workspaceSkillsDir string
}

type sourceDir struct {
	source domain.SkillSource
	path   string
}

// NewManager creates a skill manager. bundledDir may be empty when the
// deployment ships no bundled skills; managedDir and workspaceDir are
// the gateway-managed and user-owned skill roots.
func NewManager(fs afero.Fs, bundledDir, managedDir, workspaceDir string, cfg EnablementConfig) *Manager {
	dirs := make([]sourceDir, 0, 3)
	if bundledDir != "" {
		dirs = append(dirs, sourceDir{source: domain.SkillSourceBundled, path: bundledDir})
	}
	dirs = append(dirs,
		sourceDir{source: domain.SkillSourceManaged, path: managedDir},
		sourceDir{source: domain.SkillSourceWorkspace, path: workspaceDir},
	)
	return &Manager{fs: fs, dirs: dirs, cfg: cfg, workspaceSkillsDir: workspaceDir}
}

// List returns every discovered skill. Skills sort by directory name
// within each source tier; a skill present in several tiers appears
// once per tier.
func (m *Manager) List() []domain.Skill {
	skills := make([]domain.Skill, 0, 16)
	for _, dir := range m.dirs {
		infos, err := afero.ReadDir(m.fs, dir.path)
		if err != nil {
			continue
		}
		sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
		for _, info := range infos {
			if !info.IsDir() {
				continue
			}
			skills = append(skills, m.describe(dir, info.Name()))
		}
	}
	return skills
}

// Get returns a skill by ID, searching tiers in discovery order.
func (m *Manager) Get(skillID string) (domain.Skill, error) {
	for _, s := range m.List() {
		if s.ID == skillID {
			return s, nil
		}
	}
	return domain.Skill{}, warroomerrors.ErrSkillNotFound
}

// Create writes a new workspace skill directory with a SKILL.md built
// from the payload and returns the discovered result.
func (m *Manager) Create(req domain.SkillCreate) (domain.Skill, error) {
	if err := domain.Validate(req); err != nil {
		return domain.Skill{}, err
	}

	dir := filepath.Join(m.workspaceSkillsDir, req.Name)
	if err := m.fs.MkdirAll(dir, constants.DirPerm); err != nil {
		return domain.Skill{}, warroomerrors.Wrapf(err, "failed to create skill %s", req.Name)
	}

	md := fmt.Sprintf("---\nname: %s\ndescription: %s\n---\n\n%s", req.Name, req.Description, req.Instructions)
	path := filepath.Join(dir, constants.SkillFileName)
	if err := afero.WriteFile(m.fs, path, []byte(md), constants.FilePerm); err != nil {
		return domain.Skill{}, warroomerrors.Wrapf(err, "failed to write %s", constants.SkillFileName)
	}

	return m.Get(req.Name)
}

// Content returns the raw SKILL.md of a skill.
func (m *Manager) Content(skillID string) (string, error) {
	s, err := m.Get(skillID)
	if err != nil {
		return "", err
	}
	data, err := afero.ReadFile(m.fs, filepath.Join(s.Path, constants.SkillFileName))
	if err != nil {
		return "", warroomerrors.Wrapf(err, "failed to read skill %s", skillID)
	}
	return string(data), nil
}

// Toggle flips a skill's enablement in the shared configuration and
// returns the updated skill.
func (m *Manager) Toggle(skillID string) (domain.Skill, error) {
	s, err := m.Get(skillID)
	if err != nil {
		return domain.Skill{}, err
	}
	return m.SetEnabled(skillID, !s.Enabled)
}

// SetEnabled writes an explicit enablement state and returns the
// updated skill.
func (m *Manager) SetEnabled(skillID string, enabled bool) (domain.Skill, error) {
	if _, err := m.Get(skillID); err != nil {
		return domain.Skill{}, err
	}
	if err := m.cfg.SetSkillEnabled(skillID, enabled); err != nil {
		return domain.Skill{}, err
	}
	return m.Get(skillID)
}

// Delete removes a workspace skill directory. Bundled and managed
// skills are read-only.
func (m *Manager) Delete(skillID string) error {
	s, err := m.Get(skillID)
	if err != nil {
		return err
	}
	if s.Source != domain.SkillSourceWorkspace {
		return warroomerrors.ErrSkillProtected
	}
	return m.fs.RemoveAll(s.Path)
}

// describe builds the Skill record for one discovered directory.
func (m *Manager) describe(dir sourceDir, id string) domain.Skill {
	path := filepath.Join(dir.path, id)
	s := domain.Skill{
		ID:      id,
		Name:    id,
		Source:  dir.source,
		Enabled: m.cfg.SkillEnabled(id),
		Path:    path,
	}
	data, err := afero.ReadFile(m.fs, filepath.Join(path, constants.SkillFileName))
	if err != nil {
		return s
	}
	meta, ok := parseFrontmatter(string(data))
	if !ok {
		return s
	}
	s.HasMetadata = true
	if meta.Name != "" {
		s.Name = meta.Name
	}
	s.Description = meta.Description
	return s
}

// frontmatter is the metadata block at the top of a SKILL.md.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// parseFrontmatter extracts the YAML block between the leading ---
// markers. Missing or malformed frontmatter reports ok=false.
func parseFrontmatter(content string) (frontmatter, bool) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, "---\n") {
		return frontmatter{}, false
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return frontmatter{}, false
	}
	var fm frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return frontmatter{}, false
	}
	if fm.Name == "" && fm.Description == "" {
		return frontmatter{}, false
	}
	return fm, true
}
