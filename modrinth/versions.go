package modrinth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateVersion uploads a new version together with its files. primaryFile
// selects which of filePaths is the primary download; it may be empty when
// the API should pick. The wire payload references files by part name, so
// the path is translated here.
func (c *Client) CreateVersion(ctx context.Context, version NewVersion, filePaths []string, primaryFile string) (*Version, error) {
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("at least one version file is required")
	}

	files := make([]filePart, 0, len(filePaths))
	for i, path := range filePaths {
		files = append(files, filePart{field: fmt.Sprintf("file%d", i), path: path})
	}

	version.FileParts = make([]string, 0, len(files))
	for _, f := range files {
		version.FileParts = append(version.FileParts, f.field)
	}

	version.PrimaryFile = ""
	if primaryFile != "" {
		for _, f := range files {
			if f.path == primaryFile {
				version.PrimaryFile = f.field
				break
			}
		}
		if version.PrimaryFile == "" {
			return nil, fmt.Errorf("primary file %s is not among the uploaded files", primaryFile)
		}
	}

	body, contentType, err := multipartPayload(version, files)
	if err != nil {
		return nil, err
	}

	var created Version
	err = c.doJSON(ctx, http.MethodPost, "/version", 2, requestOptions{
		rawBody:     body,
		contentType: contentType,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetVersion fetches a single version by ID.
func (c *Client) GetVersion(ctx context.Context, versionID string) (*Version, error) {
	var version Version
	path := fmt.Sprintf("/version/%s", url.PathEscape(versionID))
	if err := c.doJSON(ctx, http.MethodGet, path, 2, requestOptions{}, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// ModifyVersion applies a partial update to a version.
func (c *Client) ModifyVersion(ctx context.Context, versionID string, update VersionUpdate) error {
	path := fmt.Sprintf("/version/%s", url.PathEscape(versionID))
	return c.doJSON(ctx, http.MethodPatch, path, 2, requestOptions{jsonBody: update}, nil)
}

// DeleteVersion removes a version.
func (c *Client) DeleteVersion(ctx context.Context, versionID string) error {
	path := fmt.Sprintf("/version/%s", url.PathEscape(versionID))
	return c.doJSON(ctx, http.MethodDelete, path, 2, requestOptions{}, nil)
}

// GetProjectVersions lists all versions of a project.
func (c *Client) GetProjectVersions(ctx context.Context, idOrSlug string) ([]Version, error) {
	var versions []Version
	path := fmt.Sprintf("/project/%s/version", url.PathEscape(idOrSlug))
	if err := c.doJSON(ctx, http.MethodGet, path, 2, requestOptions{}, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}
