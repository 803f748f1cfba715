package modrinth

// ProjectType identifies the kind of content a project distributes.
type ProjectType string

const (
	ProjectTypeMod          ProjectType = "mod"
	ProjectTypeModpack      ProjectType = "modpack"
	ProjectTypeResourcePack ProjectType = "resourcepack"
	ProjectTypeShader       ProjectType = "shader"
)

// SideSupport describes whether a project is needed on a given side.
type SideSupport string

const (
	SideRequired    SideSupport = "required"
	SideOptional    SideSupport = "optional"
	SideUnsupported SideSupport = "unsupported"
	SideUnknown     SideSupport = "unknown"
)

// VersionChannel is the release channel of a version.
type VersionChannel string

const (
	ChannelRelease VersionChannel = "release"
	ChannelBeta    VersionChannel = "beta"
	ChannelAlpha   VersionChannel = "alpha"
)

// Project status values the pipeline cares about.
const (
	StatusDraft      = "draft"
	StatusProcessing = "processing"
	StatusApproved   = "approved"
)

// DonationURL is a donation link attached to a project.
type DonationURL struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// NewProject is the payload for creating a project. Optional fields are
// omitted from the wire format when absent.
type NewProject struct {
	Slug                 string        `json:"slug"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Categories           []string      `json:"categories"`
	AdditionalCategories []string      `json:"additional_categories,omitempty"`
	ClientSide           SideSupport   `json:"client_side"`
	ServerSide           SideSupport   `json:"server_side"`
	Body                 string        `json:"body"`
	ProjectType          ProjectType   `json:"project_type"`
	LicenseID            string        `json:"license_id"`
	OrganizationID       string        `json:"organization_id,omitempty"`
	IssuesURL            string        `json:"issues_url,omitempty"`
	SourceURL            string        `json:"source_url,omitempty"`
	WikiURL              string        `json:"wiki_url,omitempty"`
	DiscordURL           string        `json:"discord_url,omitempty"`
	DonationURLs         []DonationURL `json:"donation_urls,omitempty"`
	InitialVersions      []string      `json:"initial_versions"`
	IsDraft              bool          `json:"is_draft"`
}

// ProjectUpdate is a partial mutation of a project. Nil fields are left
// untouched on the remote side.
type ProjectUpdate struct {
	Title                *string     `json:"title,omitempty"`
	Description          *string     `json:"description,omitempty"`
	Categories           []string    `json:"categories,omitempty"`
	AdditionalCategories []string    `json:"additional_categories,omitempty"`
	Body                 *string     `json:"body,omitempty"`
	Status               *string     `json:"status,omitempty"`
	LicenseID            *string     `json:"license_id,omitempty"`
	IssuesURL            *string     `json:"issues_url,omitempty"`
	SourceURL            *string     `json:"source_url,omitempty"`
	WikiURL              *string     `json:"wiki_url,omitempty"`
	DiscordURL           *string     `json:"discord_url,omitempty"`
	ClientSide           SideSupport `json:"client_side,omitempty"`
	ServerSide           SideSupport `json:"server_side,omitempty"`
}

// GalleryEntry is one image in a project's gallery as returned by the API.
type GalleryEntry struct {
	URL         string `json:"url"`
	Featured    bool   `json:"featured"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Created     string `json:"created"`
	Ordering    int    `json:"ordering"`
}

// License identifies a project's license.
type License struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Project is a project as returned by the API. Only the fields the
// pipeline consumes are modeled.
type Project struct {
	ID           string         `json:"id"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	ProjectType  ProjectType    `json:"project_type"`
	Status       string         `json:"status"`
	IconURL      string         `json:"icon_url"`
	Gallery      []GalleryEntry `json:"gallery"`
	Versions     []string       `json:"versions"`
	Categories   []string       `json:"categories"`
	License      License        `json:"license"`
	Organization string         `json:"organization"`
}

// GalleryImage describes an image upload for a project gallery.
type GalleryImage struct {
	Path        string
	Ext         string
	Featured    bool
	Title       string
	Description string
	Ordering    *int
}

// Dependency is a version's dependency on another project or version.
type Dependency struct {
	VersionID      string `json:"version_id,omitempty"`
	ProjectID      string `json:"project_id,omitempty"`
	FileName       string `json:"file_name,omitempty"`
	DependencyType string `json:"dependency_type"`
}

// NewVersion is the payload for creating a version. FilePart names are
// filled in by CreateVersion from the uploaded files.
type NewVersion struct {
	Name          string         `json:"name"`
	VersionNumber string         `json:"version_number"`
	Changelog     string         `json:"changelog,omitempty"`
	ProjectID     string         `json:"project_id"`
	Dependencies  []Dependency   `json:"dependencies"`
	GameVersions  []string       `json:"game_versions"`
	VersionType   VersionChannel `json:"version_type"`
	Loaders       []string       `json:"loaders"`
	Featured      bool           `json:"featured"`
	FileParts     []string       `json:"file_parts"`
	PrimaryFile   string         `json:"primary_file,omitempty"`
}

// VersionUpdate is a partial mutation of a version.
type VersionUpdate struct {
	Name          *string         `json:"name,omitempty"`
	VersionNumber *string         `json:"version_number,omitempty"`
	Changelog     *string         `json:"changelog,omitempty"`
	GameVersions  []string        `json:"game_versions,omitempty"`
	VersionType   *VersionChannel `json:"version_type,omitempty"`
	Loaders       []string        `json:"loaders,omitempty"`
	Featured      *bool           `json:"featured,omitempty"`
}

// VersionFile is one file attached to a published version.
type VersionFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Primary  bool   `json:"primary"`
	Size     int64  `json:"size"`
}

// Version is a version as returned by the API.
type Version struct {
	ID            string         `json:"id"`
	ProjectID     string         `json:"project_id"`
	Name          string         `json:"name"`
	VersionNumber string         `json:"version_number"`
	GameVersions  []string       `json:"game_versions"`
	VersionType   VersionChannel `json:"version_type"`
	Loaders       []string       `json:"loaders"`
	Featured      bool           `json:"featured"`
	Files         []VersionFile  `json:"files"`
}

// GameVersion is one entry of the game version tag list, newest first.
type GameVersion struct {
	Version     string `json:"version"`
	VersionType string `json:"version_type"`
	Date        string `json:"date"`
	Major       bool   `json:"major"`
}

// Loader is one entry of the loader tag list.
type Loader struct {
	Icon                  string   `json:"icon"`
	Name                  string   `json:"name"`
	SupportedProjectTypes []string `json:"supported_project_types"`
}
