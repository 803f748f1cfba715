package modrinth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestCreateProjectUploadsDataAndIcon(t *testing.T) {
	iconPath := writeTempFile(t, "icon.png", []byte("png-bytes"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/project", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))

		var payload NewProject
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &payload))
		assert.Equal(t, "fancy-pack", payload.Slug)
		assert.Equal(t, ProjectTypeResourcePack, payload.ProjectType)

		icon, header, err := r.FormFile("icon")
		require.NoError(t, err)
		defer icon.Close()
		assert.Equal(t, "icon.png", header.Filename)
		content, err := io.ReadAll(icon)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), content)

		json.NewEncoder(w).Encode(Project{ID: "new-id", Slug: payload.Slug})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	created, err := client.CreateProject(context.Background(), NewProject{
		Slug:        "fancy-pack",
		Title:       "Fancy Pack",
		ProjectType: ProjectTypeResourcePack,
		ClientSide:  SideRequired,
		ServerSide:  SideUnsupported,
	}, iconPath)
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
}

func TestCreateProjectWithoutIcon(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("icon")
		assert.Error(t, err, "no icon part expected")
		json.NewEncoder(w).Encode(Project{ID: "new-id"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.CreateProject(context.Background(), NewProject{Slug: "x"}, "")
	require.NoError(t, err)
}

func TestCreateProjectMissingIconFile(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")
	_, err := client.CreateProject(context.Background(), NewProject{Slug: "x"}, "/does/not/exist.png")
	require.Error(t, err)
	assert.Nil(t, AsAPIError(err))
}

func TestCreateVersionUploadsFileParts(t *testing.T) {
	packPath := writeTempFile(t, "fancy-pack.zip", []byte("zip-bytes"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/version", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var payload NewVersion
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &payload))
		assert.Equal(t, []string{"file0"}, payload.FileParts)
		assert.Equal(t, "file0", payload.PrimaryFile, "primary_file must reference a part name, not a file name")
		assert.Equal(t, "proj-id", payload.ProjectID)

		file, header, err := r.FormFile("file0")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "fancy-pack.zip", header.Filename)

		json.NewEncoder(w).Encode(Version{ID: "ver-id", ProjectID: payload.ProjectID})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	created, err := client.CreateVersion(context.Background(), NewVersion{
		Name:          "Fancy Pack 1.2.0",
		VersionNumber: "1.2.0",
		ProjectID:     "proj-id",
		Loaders:       []string{"minecraft"},
		VersionType:   ChannelRelease,
		Dependencies:  []Dependency{},
		GameVersions:  []string{"1.21.1", "1.21"},
	}, []string{packPath}, packPath)
	require.NoError(t, err)
	assert.Equal(t, "ver-id", created.ID)
}

func TestCreateVersionRequiresFiles(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")
	_, err := client.CreateVersion(context.Background(), NewVersion{}, nil, "")
	require.Error(t, err)
}

func TestCreateVersionRejectsUnknownPrimaryFile(t *testing.T) {
	packPath := writeTempFile(t, "fancy-pack.zip", []byte("zip-bytes"))

	client := newTestClient(t, "http://127.0.0.1:0")
	_, err := client.CreateVersion(context.Background(), NewVersion{}, []string{packPath}, "/elsewhere/other.zip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not among the uploaded files")
}

func TestAddGalleryImage(t *testing.T) {
	imgPath := writeTempFile(t, "gallery.webp", []byte("webp-bytes"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/project/fancy-pack/gallery", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "webp", q.Get("ext"))
		assert.Equal(t, "true", q.Get("featured"))
		assert.Equal(t, "Preview", q.Get("title"))
		assert.Empty(t, q.Get("ordering"), "unset ordering must be omitted")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("webp-bytes"), body)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	err := client.AddGalleryImage(context.Background(), "fancy-pack", GalleryImage{
		Path:     imgPath,
		Ext:      "webp",
		Featured: true,
		Title:    "Preview",
	})
	require.NoError(t, err)
}

func TestDeleteGalleryImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "https://cdn.example.com/img.webp", r.URL.Query().Get("url"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	err := client.DeleteGalleryImage(context.Background(), "fancy-pack", "https://cdn.example.com/img.webp")
	require.NoError(t, err)
}

func TestGetOrganizationProjectsUsesV3(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/organization/org-id/projects", r.URL.Path)
		json.NewEncoder(w).Encode([]Project{{Slug: "a"}, {Slug: "b"}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	projects, err := client.GetOrganizationProjects(context.Background(), "org-id")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "a", projects[0].Slug)
}

func TestCutGameVersionsUntil(t *testing.T) {
	versions := []GameVersion{
		{Version: "1.21.1"},
		{Version: "1.21"},
		{Version: "24w36a"},
		{Version: "1.20.6"},
	}

	tests := []struct {
		name   string
		cutoff string
		want   []string
	}{
		{name: "cutoff in middle", cutoff: "1.21", want: []string{"1.21.1", "1.21"}},
		{name: "cutoff is snapshot", cutoff: "24w36a", want: []string{"1.21.1", "1.21", "24w36a"}},
		{name: "cutoff absent keeps all", cutoff: "0.0.0", want: []string{"1.21.1", "1.21", "24w36a", "1.20.6"}},
		{name: "cutoff first", cutoff: "1.21.1", want: []string{"1.21.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CutGameVersionsUntil(tt.cutoff, versions)
			assert.Equal(t, tt.want, VersionStrings(got))
		})
	}
}
