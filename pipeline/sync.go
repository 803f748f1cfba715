package pipeline

import (
	"context"
	"fmt"

	"github.com/pridecraft/packsmith/modrinth"
)

// SyncGameVersions re-expands each published project's game version list
// to the current cutoff expansion. The version matching the local pack
// version is updated; when none matches, the newest version is.
func (r *Runner) SyncGameVersions(ctx context.Context) error {
	done := r.taskTimer("sync_versions")
	defer done()

	gameVersions, err := r.api.GetGameVersions(ctx)
	if err != nil {
		return err
	}

	remote := r.fetchOrgProjects(ctx)
	targets, err := r.targets(remote, targetMode{skipMissing: true})
	if err != nil {
		return err
	}

	items := make([]modrinth.WorkItem[TaskResult], 0, len(targets))
	for _, t := range targets {
		project := t.project
		r.logger.Info().Str("dir", project.DirName).Msg("Queued for game version sync")

		items = append(items, func() (TaskResult, error) {
			result := TaskResult{Slug: project.Meta.Slug, Dir: project.DirName}

			versions, err := r.api.GetProjectVersions(ctx, project.Meta.Slug)
			if err != nil {
				result.Err = err
				return result, err
			}
			if len(versions) == 0 {
				result.Err = fmt.Errorf("project has no published versions")
				return result, result.Err
			}

			// The API lists versions newest first.
			selected := versions[0]
			for _, v := range versions {
				if v.VersionNumber == project.Meta.VersionNumber {
					selected = v
					break
				}
			}

			if r.dryRun {
				r.logger.Info().
					Str("dir", project.DirName).
					Str("version", selected.VersionNumber).
					Msg("Dry run: would sync game versions")
				return result, nil
			}

			err = r.api.ModifyVersion(ctx, selected.ID, modrinth.VersionUpdate{
				GameVersions: modrinth.VersionStrings(
					modrinth.CutGameVersionsUntil(project.Meta.GameVersionCutoff, gameVersions)),
			})
			result.Err = err
			return result, err
		})
	}

	return r.runWork(ctx, "sync_versions", items)
}
