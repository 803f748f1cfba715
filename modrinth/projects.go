package modrinth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
)

// CreateProject creates a new project, optionally uploading its icon in
// the same request. The created project as echoed by the API is returned.
func (c *Client) CreateProject(ctx context.Context, project NewProject, iconPath string) (*Project, error) {
	var files []filePart
	if iconPath != "" {
		files = append(files, filePart{field: "icon", path: iconPath})
	}

	body, contentType, err := multipartPayload(project, files)
	if err != nil {
		return nil, err
	}

	var created Project
	err = c.doJSON(ctx, http.MethodPost, "/project", 2, requestOptions{
		rawBody:     body,
		contentType: contentType,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetProject fetches a project by ID or slug.
func (c *Client) GetProject(ctx context.Context, idOrSlug string) (*Project, error) {
	var project Project
	path := fmt.Sprintf("/project/%s", url.PathEscape(idOrSlug))
	if err := c.doJSON(ctx, http.MethodGet, path, 2, requestOptions{}, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ModifyProject applies a partial update to a project.
func (c *Client) ModifyProject(ctx context.Context, idOrSlug string, update ProjectUpdate) error {
	path := fmt.Sprintf("/project/%s", url.PathEscape(idOrSlug))
	return c.doJSON(ctx, http.MethodPatch, path, 2, requestOptions{jsonBody: update}, nil)
}

// ChangeProjectIcon replaces a project's icon with the given image file.
func (c *Client) ChangeProjectIcon(ctx context.Context, idOrSlug, iconPath, ext string) error {
	img, err := os.ReadFile(iconPath)
	if err != nil {
		return fmt.Errorf("failed to read icon %s: %w", iconPath, err)
	}

	query := url.Values{}
	query.Set("ext", ext)
	path := fmt.Sprintf("/project/%s/icon", url.PathEscape(idOrSlug))
	return c.doJSON(ctx, http.MethodPatch, path, 2, requestOptions{query: query, rawBody: img}, nil)
}

// GetOrganizationProjects lists all projects owned by an organization.
// Organizations are a v3 API surface.
func (c *Client) GetOrganizationProjects(ctx context.Context, organizationID string) ([]Project, error) {
	var projects []Project
	path := fmt.Sprintf("/organization/%s/projects", url.PathEscape(organizationID))
	if err := c.doJSON(ctx, http.MethodGet, path, 3, requestOptions{}, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
