package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMetadata = `---
slug: pride-rainbow
name: Rainbow Pride Pack
summary: Rainbow flags everywhere.
primary_categories: decoration
additional_categories: themed
license_id: MIT
org_id_source: pridecraft
icon_file: icon.png
gallery_file: gallery.png
gallery_title: Rainbow
gallery_description: A rainbow banner.
version_file: pack.zip
version_version: 2.1.0
version_game_version_cutoff: "1.19"
---

# Rainbow Pride Pack

![gallery]({{ upload_gallery_url }})
`

// writeProjectDir creates a project directory with metadata and the named
// asset files.
func writeProjectDir(t *testing.T, buildDir, dirName, metadata string, assets ...string) string {
	t.Helper()

	dir := filepath.Join(buildDir, dirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataFile), []byte(metadata), 0o644))
	for _, name := range assets {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	return dir
}

func TestLoadProject(t *testing.T) {
	buildDir := t.TempDir()
	dir := writeProjectDir(t, buildDir, "rainbow", sampleMetadata, "icon.png", "gallery.png", "pack.zip")

	project, err := LoadProject(dir)
	require.NoError(t, err)

	assert.Equal(t, "pride-rainbow", project.Meta.Slug)
	assert.Equal(t, "Rainbow Pride Pack", project.Meta.Name)
	assert.Equal(t, "rainbow", project.DirName)
	assert.Equal(t, "2.1.0", project.Meta.VersionNumber)
	assert.Equal(t, "1.19", project.Meta.GameVersionCutoff)
	assert.Contains(t, project.Body, "# Rainbow Pride Pack")
	assert.NotContains(t, project.Body, "slug:")

	version, err := project.Version()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), version.Major)
}

func TestLoadProjectRejectsBadMetadata(t *testing.T) {
	tests := []struct {
		name     string
		metadata string
	}{
		{"no frontmatter", "# Just markdown\n"},
		{"unterminated frontmatter", "---\nslug: abc\n"},
		{"invalid yaml", "---\nslug: [\n---\nbody\n"},
		{"missing slug", "---\nname: No Slug\n---\nbody\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buildDir := t.TempDir()
			dir := writeProjectDir(t, buildDir, "broken", tt.metadata)

			_, err := LoadProject(dir)
			assert.Error(t, err)
		})
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	_, err := LoadProject(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestMissingFiles(t *testing.T) {
	buildDir := t.TempDir()
	dir := writeProjectDir(t, buildDir, "rainbow", sampleMetadata, "icon.png", "pack.zip")

	project, err := LoadProject(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"gallery.png"}, project.MissingFiles())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "gallery.png"), []byte("x"), 0o644))
	assert.Empty(t, project.MissingFiles())
}

func TestDiscoverSkipsInvalidDirectories(t *testing.T) {
	buildDir := t.TempDir()
	writeProjectDir(t, buildDir, "rainbow", sampleMetadata)
	require.NoError(t, os.MkdirAll(filepath.Join(buildDir, "no-metadata"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, "stray-file.txt"), []byte("x"), 0o644))

	projects, err := Discover(buildDir, zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, projects, 1)
	assert.Equal(t, "pride-rainbow", projects[0].Meta.Slug)
}

func TestDiscoverMissingBuildDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), zerolog.Nop())
	assert.Error(t, err)
}
