package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pridecraft/packsmith/config"
	"github.com/pridecraft/packsmith/modrinth"
)

// maxVersionNameLen is the display-name limit the API enforces on
// versions.
const maxVersionNameLen = 64

// Runner executes publishing tasks over the built project tree. It builds
// independent work items per project and fans them out through the
// client's batch executor; per-item failures are captured in TaskResults
// and never stop sibling projects.
type Runner struct {
	api         *modrinth.Client
	cfg         *config.Config
	logger      zerolog.Logger
	filter      *Filter
	dryRun      bool
	maxParallel int
}

// NewRunner creates a new Runner instance
func NewRunner(api *modrinth.Client, cfg *config.Config, logger zerolog.Logger) *Runner {
	return &Runner{
		api:         api,
		cfg:         cfg,
		logger:      logger,
		dryRun:      cfg.Safety.DryRun,
		maxParallel: cfg.Modrinth.MaxParallel,
	}
}

// SetFilter restricts local-project tasks to projects matching the filter.
func (r *Runner) SetFilter(f *Filter) {
	r.filter = f
}

// SetDryRun overrides the configured dry-run mode.
func (r *Runner) SetDryRun(dryRun bool) {
	r.dryRun = dryRun
}

// TaskResult is the outcome of one per-project operation. Work items
// record their failure here instead of relying on the batch error, so
// every project's outcome stays inspectable.
type TaskResult struct {
	Slug string
	Dir  string
	Err  error
}

// target pairs a local project with its remote counterpart, if any.
type target struct {
	project *Project
	remote  *modrinth.Project
}

// taskTimer logs task start and returns a func logging completion.
func (r *Runner) taskTimer(task string) func() {
	start := time.Now()
	r.logger.Info().Str("task", task).Msg("Starting task")
	return func() {
		r.logger.Info().
			Str("task", task).
			Dur("elapsed", time.Since(start)).
			Msg("Task completed")
	}
}

// fetchOrgProjects fetches every configured organization's projects and
// indexes them by slug. Fetch failures are logged and yield a partial (or
// empty) index; tasks then treat the affected projects as missing.
func (r *Runner) fetchOrgProjects(ctx context.Context) map[string]modrinth.Project {
	index := make(map[string]modrinth.Project)

	orgKeys := make([]string, 0, len(r.cfg.Orgs))
	for key := range r.cfg.Orgs {
		orgKeys = append(orgKeys, key)
	}
	sort.Strings(orgKeys)

	for _, key := range orgKeys {
		orgID := r.cfg.Orgs[key]
		projects, err := r.api.GetOrganizationProjects(ctx, orgID)
		if err != nil {
			r.logger.Error().
				Str("org", key).
				Err(err).
				Msg("Failed to fetch organization projects")
			continue
		}
		for _, project := range projects {
			index[project.Slug] = project
		}
	}

	return index
}

// targetMode controls which projects a task selects.
type targetMode struct {
	skipExisting bool // skip projects already present remotely
	skipMissing  bool // skip projects absent remotely
}

// targets discovers local projects and applies file checks, existence
// rules and the optional filter.
func (r *Runner) targets(remote map[string]modrinth.Project, mode targetMode) ([]target, error) {
	projects, err := Discover(r.cfg.Build.Dir, r.logger)
	if err != nil {
		return nil, err
	}

	var selected []target
	for _, project := range projects {
		if missing := project.MissingFiles(); len(missing) > 0 {
			r.logger.Warn().
				Str("dir", project.DirName).
				Strs("missing", missing).
				Msg("Skipping project due to missing files")
			continue
		}

		remoteProject, exists := remote[project.Meta.Slug]
		if mode.skipExisting && exists {
			r.logger.Info().
				Str("dir", project.DirName).
				Msg("Project already exists, skipping")
			continue
		}
		if mode.skipMissing && !exists {
			r.logger.Warn().
				Str("dir", project.DirName).
				Msg("Project not found on Modrinth, skipping")
			continue
		}

		if r.filter != nil {
			ok, err := r.filter.Match(project, exists)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		t := target{project: project}
		if exists {
			p := remoteProject
			t.remote = &p
		}
		selected = append(selected, t)
	}

	return selected, nil
}

// runWork executes the task's work items and logs every project's
// outcome. It returns an error when any project failed.
func (r *Runner) runWork(ctx context.Context, task string, items []modrinth.WorkItem[TaskResult]) error {
	if len(items) == 0 {
		r.logger.Info().Str("task", task).Msg("Nothing to do")
		return nil
	}

	results, _ := modrinth.RunAll(ctx, items, r.maxParallel)

	failed := 0
	for _, result := range results {
		outcome := result.Value
		err := outcome.Err
		if err == nil {
			err = result.Err
		}
		if err != nil {
			failed++
			r.logger.Error().
				Str("dir", outcome.Dir).
				Str("slug", outcome.Slug).
				Err(err).
				Msg("Task failed for project")
			continue
		}
		r.logger.Info().
			Str("dir", outcome.Dir).
			Str("slug", outcome.Slug).
			Msg("Task succeeded for project")
	}

	if failed > 0 {
		return fmt.Errorf("%s: %d of %d project(s) failed", task, failed, len(results))
	}
	return nil
}

// versionName composes a version display name from the project name and
// pack version, stripping configured redundant info and applying the
// configured shortening substitutions (in sorted key order) while the
// name exceeds the API's length limit.
func versionName(name, versionNumber string, meta config.MetaConfig) string {
	display := name
	if meta.RedundantInfo != "" {
		display = strings.ReplaceAll(display, meta.RedundantInfo, "")
	}
	display = strings.TrimSpace(display) + " " + versionNumber

	keys := make([]string, 0, len(meta.Shortenable))
	for key := range meta.Shortenable {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if len(display) <= maxVersionNameLen {
			break
		}
		display = strings.ReplaceAll(display, key, meta.Shortenable[key])
	}
	return display
}

// renderBody substitutes the gallery URL placeholder in a project body.
func renderBody(body, galleryURL string) string {
	for _, placeholder := range []string{"{{ upload_gallery_url }}", "{{upload_gallery_url}}"} {
		body = strings.ReplaceAll(body, placeholder, galleryURL)
	}
	return body
}

// featuredGalleryURL returns the URL of a project's first gallery image.
func featuredGalleryURL(project *modrinth.Project) string {
	if len(project.Gallery) == 0 {
		return ""
	}
	return project.Gallery[0].URL
}
