package pipeline

import (
	"context"
	"sort"

	"github.com/pridecraft/packsmith/modrinth"
)

// Submit moves every draft project of the configured organizations into
// review. Projects already processing are skipped. This task operates on
// the remote organization index, not the local build tree.
func (r *Runner) Submit(ctx context.Context) error {
	done := r.taskTimer("submit")
	defer done()

	remote := r.fetchOrgProjects(ctx)

	slugs := make([]string, 0, len(remote))
	for slug := range remote {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	items := make([]modrinth.WorkItem[TaskResult], 0, len(slugs))
	for _, slug := range slugs {
		project := remote[slug]
		r.logger.Info().Str("slug", slug).Msg("Queued for submit")

		items = append(items, func() (TaskResult, error) {
			result := TaskResult{Slug: project.Slug, Dir: project.Slug}

			if project.Status == modrinth.StatusProcessing {
				r.logger.Info().Str("slug", project.Slug).Msg("Already processing, skipping")
				return result, nil
			}

			if r.dryRun {
				r.logger.Info().Str("slug", project.Slug).Msg("Dry run: would submit project")
				return result, nil
			}

			status := modrinth.StatusProcessing
			err := r.api.ModifyProject(ctx, project.ID, modrinth.ProjectUpdate{Status: &status})
			result.Err = err
			return result, err
		})
	}

	return r.runWork(ctx, "submit", items)
}
