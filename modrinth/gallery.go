package modrinth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
)

// AddGalleryImage uploads an image to a project's gallery. Image metadata
// travels as query parameters, the image itself as the request body.
func (c *Client) AddGalleryImage(ctx context.Context, idOrSlug string, image GalleryImage) error {
	img, err := os.ReadFile(image.Path)
	if err != nil {
		return fmt.Errorf("failed to read gallery image %s: %w", image.Path, err)
	}

	query := url.Values{}
	query.Set("ext", image.Ext)
	query.Set("featured", strconv.FormatBool(image.Featured))
	if image.Title != "" {
		query.Set("title", image.Title)
	}
	if image.Description != "" {
		query.Set("description", image.Description)
	}
	if image.Ordering != nil {
		query.Set("ordering", strconv.Itoa(*image.Ordering))
	}

	path := fmt.Sprintf("/project/%s/gallery", url.PathEscape(idOrSlug))
	return c.doJSON(ctx, http.MethodPost, path, 2, requestOptions{query: query, rawBody: img}, nil)
}

// DeleteGalleryImage removes a gallery image identified by its public URL.
func (c *Client) DeleteGalleryImage(ctx context.Context, idOrSlug, imageURL string) error {
	query := url.Values{}
	query.Set("url", imageURL)

	path := fmt.Sprintf("/project/%s/gallery", url.PathEscape(idOrSlug))
	return c.doJSON(ctx, http.MethodDelete, path, 2, requestOptions{query: query}, nil)
}
