package pipeline

import (
	"context"
	"os"

	"github.com/blang/semver"

	"github.com/pridecraft/packsmith/modrinth"
)

// CleanupNonDraft deletes local project directories whose remote project
// has moved past the draft status; their content is live and the local
// copy is no longer the source of the next publish.
func (r *Runner) CleanupNonDraft(ctx context.Context) error {
	done := r.taskTimer("cleanup_non_draft")
	defer done()

	remote := r.fetchOrgProjects(ctx)
	targets, err := r.targets(remote, targetMode{skipMissing: true})
	if err != nil {
		return err
	}

	deleted := 0
	for _, t := range targets {
		if t.remote.Status == modrinth.StatusDraft {
			continue
		}
		if r.removeProjectDir(t.project) {
			deleted++
		}
	}

	r.logger.Info().Int("deleted", deleted).Msg("Cleanup summary")
	return nil
}

// CleanupPublished deletes local project directories whose current pack
// version is already published remotely.
func (r *Runner) CleanupPublished(ctx context.Context) error {
	done := r.taskTimer("cleanup_published")
	defer done()

	remote := r.fetchOrgProjects(ctx)
	targets, err := r.targets(remote, targetMode{skipMissing: true})
	if err != nil {
		return err
	}

	deleted := 0
	for _, t := range targets {
		project := t.project
		log := r.logger.With().Str("dir", project.DirName).Logger()

		if project.Meta.VersionNumber == "" {
			log.Warn().Msg("Missing pack version in metadata, skipping")
			continue
		}

		versions, err := r.api.GetProjectVersions(ctx, project.Meta.Slug)
		if err != nil {
			log.Error().Err(err).Msg("Failed to check published versions")
			continue
		}

		if !versionPublished(project.Meta.VersionNumber, versions) {
			log.Info().
				Str("version", project.Meta.VersionNumber).
				Msg("Current version not published yet, keeping folder")
			continue
		}

		log.Info().
			Str("version", project.Meta.VersionNumber).
			Msg("Current version already published")
		if r.removeProjectDir(project) {
			deleted++
		}
	}

	r.logger.Info().Int("deleted", deleted).Msg("Cleanup summary")
	return nil
}

// versionPublished reports whether the local pack version already exists
// among the published versions. Version numbers are compared as semver
// when both sides parse, falling back to exact string match.
func versionPublished(local string, versions []modrinth.Version) bool {
	localVer, localErr := semver.ParseTolerant(local)
	for _, v := range versions {
		if v.VersionNumber == local {
			return true
		}
		if localErr != nil {
			continue
		}
		if remoteVer, err := semver.ParseTolerant(v.VersionNumber); err == nil && remoteVer.EQ(localVer) {
			return true
		}
	}
	return false
}

// removeProjectDir deletes a project directory, honoring dry-run mode.
func (r *Runner) removeProjectDir(project *Project) bool {
	if r.dryRun {
		r.logger.Info().Str("dir", project.DirName).Msg("Dry run: would delete project folder")
		return false
	}
	if err := os.RemoveAll(project.Dir); err != nil {
		r.logger.Error().Str("dir", project.DirName).Err(err).Msg("Failed to delete project folder")
		return false
	}
	r.logger.Info().Str("dir", project.DirName).Msg("Deleted project folder")
	return true
}
