package modrinth

import (
	"context"
	"net/http"
)

// GetGameVersions lists all known game versions, newest first.
func (c *Client) GetGameVersions(ctx context.Context) ([]GameVersion, error) {
	var versions []GameVersion
	if err := c.doJSON(ctx, http.MethodGet, "/tag/game_version", 2, requestOptions{}, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// GetLoaders lists all known loaders.
func (c *Client) GetLoaders(ctx context.Context) ([]Loader, error) {
	var loaders []Loader
	if err := c.doJSON(ctx, http.MethodGet, "/tag/loader", 2, requestOptions{}, &loaders); err != nil {
		return nil, err
	}
	return loaders, nil
}

// GameVersionsUntil fetches the game version list and cuts it at the given
// cutoff, inclusive.
func (c *Client) GameVersionsUntil(ctx context.Context, cutoff string) ([]GameVersion, error) {
	versions, err := c.GetGameVersions(ctx)
	if err != nil {
		return nil, err
	}
	return CutGameVersionsUntil(cutoff, versions), nil
}

// CutGameVersionsUntil returns the leading slice of versions up to and
// including the cutoff version. The full list is returned when the cutoff
// never appears.
func CutGameVersionsUntil(cutoff string, versions []GameVersion) []GameVersion {
	result := make([]GameVersion, 0, len(versions))
	for _, version := range versions {
		result = append(result, version)
		if version.Version == cutoff {
			break
		}
	}
	return result
}

// VersionStrings reduces a game version list to its version names.
func VersionStrings(versions []GameVersion) []string {
	names := make([]string, 0, len(versions))
	for _, version := range versions {
		names = append(names, version.Version)
	}
	return names
}
