package pipeline

import (
	"context"
)

// Check reports every local project's file completeness and whether it
// already exists remotely. It performs no mutations.
func (r *Runner) Check(ctx context.Context) error {
	done := r.taskTimer("check")
	defer done()

	remote := r.fetchOrgProjects(ctx)

	projects, err := Discover(r.cfg.Build.Dir, r.logger)
	if err != nil {
		return err
	}

	var total, filesOK, remoteOK int
	for _, project := range projects {
		total++
		log := r.logger.With().Str("dir", project.DirName).Logger()
		log.Info().Msg("Checking project")

		if missing := project.MissingFiles(); len(missing) > 0 {
			log.Warn().Strs("missing", missing).Msg("Missing required file(s)")
		} else {
			log.Info().Msg("All required files present")
			filesOK++
		}

		if _, exists := remote[project.Meta.Slug]; exists {
			log.Info().Msg("Project exists on Modrinth")
			remoteOK++
		} else {
			log.Warn().Msg("Project not found on Modrinth")
		}
	}

	r.logger.Info().
		Int("total", total).
		Int("files_ok", filesOK).
		Int("remote_ok", remoteOK).
		Msg("Check summary")
	return nil
}
