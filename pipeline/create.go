package pipeline

import (
	"context"
	"fmt"

	"github.com/pridecraft/packsmith/modrinth"
)

// draftPlaceholder fills the description and body of freshly created
// drafts; the update tasks replace it with real content.
const draftPlaceholder = "......"

// Create creates draft projects for every local project not yet present
// remotely, uploading each project's icon alongside.
func (r *Runner) Create(ctx context.Context) error {
	done := r.taskTimer("create")
	defer done()

	remote := r.fetchOrgProjects(ctx)
	targets, err := r.targets(remote, targetMode{skipExisting: true})
	if err != nil {
		return err
	}

	items := make([]modrinth.WorkItem[TaskResult], 0, len(targets))
	for _, t := range targets {
		project := t.project
		r.logger.Info().Str("dir", project.DirName).Msg("Queued for creation")

		items = append(items, func() (TaskResult, error) {
			result := TaskResult{Slug: project.Meta.Slug, Dir: project.DirName}

			orgID, ok := r.cfg.Orgs[project.Meta.OrgSource]
			if !ok {
				result.Err = fmt.Errorf("unknown org source %q", project.Meta.OrgSource)
				return result, result.Err
			}

			if r.dryRun {
				r.logger.Info().Str("dir", project.DirName).Msg("Dry run: would create project")
				return result, nil
			}

			_, err := r.api.CreateProject(ctx, modrinth.NewProject{
				Slug:            project.Meta.Slug,
				Title:           project.Meta.Name,
				Description:     draftPlaceholder,
				Categories:      []string{},
				ClientSide:      modrinth.SideRequired,
				ServerSide:      modrinth.SideUnsupported,
				Body:            draftPlaceholder,
				ProjectType:     modrinth.ProjectTypeResourcePack,
				LicenseID:       project.Meta.LicenseID,
				OrganizationID:  orgID,
				InitialVersions: []string{},
				IsDraft:         true,
			}, project.File(project.Meta.IconFile))
			result.Err = err
			return result, err
		})
	}

	return r.runWork(ctx, "create", items)
}
