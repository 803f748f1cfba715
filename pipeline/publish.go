package pipeline

import (
	"context"

	"github.com/pridecraft/packsmith/modrinth"
)

// Publish uploads each project's current pack file as a new release
// version, with the game version list cut at the project's cutoff.
func (r *Runner) Publish(ctx context.Context) error {
	done := r.taskTimer("publish")
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
		remoteProject := t.remote
		r.logger.Info().Str("dir", project.DirName).Msg("Queued for publish")

		items = append(items, func() (TaskResult, error) {
			result := TaskResult{Slug: project.Meta.Slug, Dir: project.DirName}

			name := versionName(project.Meta.Name, project.Meta.VersionNumber, r.cfg.Meta)
			r.logger.Debug().Str("slug", project.Meta.Slug).Str("version_name", name).Msg("Composed version name")

			if r.dryRun {
				r.logger.Info().Str("dir", project.DirName).Msg("Dry run: would publish version")
				return result, nil
			}

			packFile := project.File(project.Meta.VersionFile)
			_, err := r.api.CreateVersion(ctx, modrinth.NewVersion{
				Name:          name,
				VersionNumber: project.Meta.VersionNumber,
				ProjectID:     remoteProject.ID,
				Loaders:       []string{"minecraft"},
				VersionType:   modrinth.ChannelRelease,
				Dependencies:  []modrinth.Dependency{},
				GameVersions: modrinth.VersionStrings(
					modrinth.CutGameVersionsUntil(project.Meta.GameVersionCutoff, gameVersions)),
			}, []string{packFile}, packFile)
			result.Err = err
			return result, err
		})
	}

	return r.runWork(ctx, "publish", items)
}
