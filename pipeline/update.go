package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/pridecraft/packsmith/modrinth"
)

// UpdateAll runs every update task in sequence: icon, gallery, data, body.
func (r *Runner) UpdateAll(ctx context.Context) error {
	return errors.Join(
		r.UpdateIcon(ctx),
		r.UpdateGallery(ctx),
		r.UpdateData(ctx),
		r.UpdateBody(ctx),
	)
}

// UpdateIcon replaces the remote icon of every existing project with the
// local icon file.
func (r *Runner) UpdateIcon(ctx context.Context) error {
	done := r.taskTimer("update_icon")
	defer done()

	remote := r.fetchOrgProjects(ctx)
	targets, err := r.targets(remote, targetMode{skipMissing: true})
	if err != nil {
		return err
	}

	items := make([]modrinth.WorkItem[TaskResult], 0, len(targets))
	for _, t := range targets {
		project := t.project
		r.logger.Info().Str("dir", project.DirName).Msg("Queued for icon update")

		items = append(items, func() (TaskResult, error) {
			result := TaskResult{Slug: project.Meta.Slug, Dir: project.DirName}

			if r.dryRun {
				r.logger.Info().Str("dir", project.DirName).Msg("Dry run: would update icon")
				return result, nil
			}

			refreshed, err := r.api.GetProject(ctx, project.Meta.Slug)
			if err != nil {
				result.Err = err
				return result, err
			}

			iconFile := project.File(project.Meta.IconFile)
			err = r.api.ChangeProjectIcon(ctx, refreshed.ID, iconFile, fileExt(iconFile))
			result.Err = err
			return result, err
		})
	}

	return r.runWork(ctx, "update_icon", items)
}

// UpdateGallery replaces each project's gallery image: the previous image
// is deleted (tolerating failure) before the local one is uploaded as the
// featured image.
func (r *Runner) UpdateGallery(ctx context.Context) error {
	done := r.taskTimer("update_gallery")
	defer done()

	remote := r.fetchOrgProjects(ctx)
	targets, err := r.targets(remote, targetMode{skipMissing: true})
	if err != nil {
		return err
	}

	items := make([]modrinth.WorkItem[TaskResult], 0, len(targets))
	for _, t := range targets {
		project := t.project
		remoteProject := t.remote
		r.logger.Info().Str("dir", project.DirName).Msg("Queued for gallery update")

		items = append(items, func() (TaskResult, error) {
			result := TaskResult{Slug: project.Meta.Slug, Dir: project.DirName}
			log := r.logger.With().Str("dir", project.DirName).Logger()

			if r.dryRun {
				log.Info().Msg("Dry run: would update gallery")
				return result, nil
			}

			if url := featuredGalleryURL(remoteProject); url != "" {
				log.Info().Msg("Deleting old gallery image")
				if err := r.api.DeleteGalleryImage(ctx, project.Meta.Slug, url); err != nil {
					// A stale gallery entry must not block the new upload.
					log.Warn().Err(err).Msg("Could not delete old gallery image")
				}
			}

			galleryFile := project.File(project.Meta.GalleryFile)
			log.Info().Msg("Adding new gallery image")
			err := r.api.AddGalleryImage(ctx, project.Meta.Slug, modrinth.GalleryImage{
				Path:        galleryFile,
				Ext:         fileExt(galleryFile),
				Featured:    true,
				Title:       project.Meta.GalleryTitle,
				Description: project.Meta.GalleryDescription,
			})
			result.Err = err
			return result, err
		})
	}

	return r.runWork(ctx, "update_gallery", items)
}

// UpdateData pushes each project's metadata: title, summary, categories,
// links, license and the rendered body.
func (r *Runner) UpdateData(ctx context.Context) error {
	done := r.taskTimer("update_data")
	defer done()

	remote := r.fetchOrgProjects(ctx)
	targets, err := r.targets(remote, targetMode{skipMissing: true})
	if err != nil {
		return err
	}

	items := make([]modrinth.WorkItem[TaskResult], 0, len(targets))
	for _, t := range targets {
		project := t.project
		r.logger.Info().Str("dir", project.DirName).Msg("Queued for metadata update")

		items = append(items, func() (TaskResult, error) {
			result := TaskResult{Slug: project.Meta.Slug, Dir: project.DirName}

			if r.dryRun {
				r.logger.Info().Str("dir", project.DirName).Msg("Dry run: would update metadata")
				return result, nil
			}

			refreshed, err := r.api.GetProject(ctx, project.Meta.Slug)
			if err != nil {
				result.Err = err
				return result, err
			}

			body := renderBody(project.Body, featuredGalleryURL(refreshed))
			err = r.api.ModifyProject(ctx, refreshed.ID, modrinth.ProjectUpdate{
				Title:                &project.Meta.Name,
				Description:          &project.Meta.Summary,
				Categories:           strings.Fields(project.Meta.PrimaryCategories),
				AdditionalCategories: strings.Fields(project.Meta.AdditionalCategories),
				IssuesURL:            &project.Meta.IssueURL,
				SourceURL:            &project.Meta.SourceURL,
				DiscordURL:           &project.Meta.DiscordURL,
				Body:                 &body,
				LicenseID:            &project.Meta.LicenseID,
			})
			result.Err = err
			return result, err
		})
	}

	return r.runWork(ctx, "update_data", items)
}

// UpdateBody pushes only each project's rendered body.
func (r *Runner) UpdateBody(ctx context.Context) error {
	done := r.taskTimer("update_body")
	defer done()

	remote := r.fetchOrgProjects(ctx)
	targets, err := r.targets(remote, targetMode{skipMissing: true})
	if err != nil {
		return err
	}

	items := make([]modrinth.WorkItem[TaskResult], 0, len(targets))
	for _, t := range targets {
		project := t.project
		r.logger.Info().Str("dir", project.DirName).Msg("Queued for body update")

		items = append(items, func() (TaskResult, error) {
			result := TaskResult{Slug: project.Meta.Slug, Dir: project.DirName}

			if r.dryRun {
				r.logger.Info().Str("dir", project.DirName).Msg("Dry run: would update body")
				return result, nil
			}

			refreshed, err := r.api.GetProject(ctx, project.Meta.Slug)
			if err != nil {
				result.Err = err
				return result, err
			}

			body := renderBody(project.Body, featuredGalleryURL(refreshed))
			err = r.api.ModifyProject(ctx, refreshed.ID, modrinth.ProjectUpdate{Body: &body})
			result.Err = err
			return result, err
		})
	}

	return r.runWork(ctx, "update_body", items)
}

// fileExt returns the file extension without its leading dot.
func fileExt(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
