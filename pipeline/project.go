package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blang/semver"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// MetadataFile is the per-project file carrying publish metadata as YAML
// frontmatter followed by the project's markdown body.
const MetadataFile = "modrinth.md"

var frontmatterDelim = []byte("---")

// Metadata mirrors the frontmatter of a project's metadata file.
type Metadata struct {
	Slug                 string `yaml:"slug"`
	Name                 string `yaml:"name"`
	Summary              string `yaml:"summary"`
	PrimaryCategories    string `yaml:"primary_categories"`
	AdditionalCategories string `yaml:"additional_categories"`
	IssueURL             string `yaml:"issue_url"`
	SourceURL            string `yaml:"source_url"`
	DiscordURL           string `yaml:"discord_url"`
	LicenseID            string `yaml:"license_id"`
	OrgSource            string `yaml:"org_id_source"`
	IconFile             string `yaml:"icon_file"`
	GalleryFile          string `yaml:"gallery_file"`
	GalleryTitle         string `yaml:"gallery_title"`
	GalleryDescription   string `yaml:"gallery_description"`
	VersionFile          string `yaml:"version_file"`
	VersionNumber        string `yaml:"version_version"`
	GameVersionCutoff    string `yaml:"version_game_version_cutoff"`
}

// Project is one buildable project directory.
type Project struct {
	Dir     string // absolute or build-relative directory path
	DirName string
	Meta    Metadata
	Body    string // markdown body below the frontmatter
}

// File resolves a metadata file reference against the project directory.
func (p *Project) File(name string) string {
	return filepath.Join(p.Dir, name)
}

// RequiredFiles lists the files a project must carry to be publishable.
func (p *Project) RequiredFiles() []string {
	return []string{p.Meta.VersionFile, p.Meta.IconFile, p.Meta.GalleryFile}
}

// MissingFiles returns the required files absent from the project dir.
func (p *Project) MissingFiles() []string {
	var missing []string
	for _, name := range p.RequiredFiles() {
		if name == "" {
			continue
		}
		if _, err := os.Stat(p.File(name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// Version parses the project's pack version number.
func (p *Project) Version() (semver.Version, error) {
	return semver.ParseTolerant(p.Meta.VersionNumber)
}

// LoadProject reads a project from its directory. A missing metadata file
// or invalid frontmatter is an error; the caller decides whether to skip.
func LoadProject(dir string) (*Project, error) {
	content, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", MetadataFile, err)
	}

	front, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := yaml.Unmarshal(front, &meta); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}
	if meta.Slug == "" {
		return nil, fmt.Errorf("frontmatter is missing a slug")
	}

	return &Project{
		Dir:     dir,
		DirName: filepath.Base(dir),
		Meta:    meta,
		Body:    string(bytes.TrimSpace(body)),
	}, nil
}

// Discover loads every project directory under buildDir. Directories
// without valid metadata are skipped with a warning; they never fail the
// whole discovery.
func Discover(buildDir string, logger zerolog.Logger) ([]*Project, error) {
	entries, err := os.ReadDir(buildDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read build directory %s: %w", buildDir, err)
	}

	var projects []*Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(buildDir, entry.Name())
		project, err := LoadProject(dir)
		if err != nil {
			logger.Warn().
				Str("dir", entry.Name()).
				Err(err).
				Msg("Skipping project directory")
			continue
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// splitFrontmatter separates the YAML frontmatter block from the markdown
// body. The file must open with a --- delimited block.
func splitFrontmatter(content []byte) (front, body []byte, err error) {
	trimmed := bytes.TrimLeft(content, "\r\n \t")
	if !bytes.HasPrefix(trimmed, frontmatterDelim) {
		return nil, nil, fmt.Errorf("metadata file does not start with a frontmatter block")
	}

	rest := trimmed[len(frontmatterDelim):]
	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelim...))
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated frontmatter block")
	}

	front = rest[:end]
	body = rest[end+1+len(frontmatterDelim):]
	return front, body, nil
}
