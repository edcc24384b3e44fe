package release

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/nsbackup/relkit/internal/commits"
	"github.com/nsbackup/relkit/internal/config"
	"github.com/nsbackup/relkit/internal/manifest"
	"github.com/nsbackup/relkit/internal/semver"
	"github.com/nsbackup/relkit/internal/sourcefile"
)

// Recorder journals applied changes. Failures are reported as warnings and
// never abort a bump.
type Recorder interface {
	Record(ctx context.Context, t semver.ReleaseType, changes []Change) error
}

// Bumper ties the pure engine to the persisted version locations described
// by the config.
type Bumper struct {
	fs       afero.Fs
	cfg      *config.Config
	recorder Recorder
}

// Option configures a Bumper.
type Option func(*Bumper)

// WithRecorder attaches a change journal.
func WithRecorder(r Recorder) Option {
	return func(b *Bumper) { b.recorder = r }
}

// NewBumper creates a bumper over the given filesystem and config.
func NewBumper(fs afero.Fs, cfg *config.Config, opts ...Option) *Bumper {
	b := &Bumper{fs: fs, cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result is everything a bump produced: the decision, the updated version
// set, the per-component changes, the primary version for the orchestrator
// and any non-fatal warnings.
type Result struct {
	Decision commits.Decision
	Versions Versions
	Changes  []Change
	Primary  semver.Version
	Warnings []string
}

// Current resolves every component's version from its source constant.
func (b *Bumper) Current() (Versions, error) {
	versions := make(Versions, len(config.ComponentNames()))
	for _, name := range config.ComponentNames() {
		v, err := b.Version(name)
		if err != nil {
			return nil, err
		}
		versions[name] = v
	}
	return versions, nil
}

// Version resolves a single component's version from its source constant.
func (b *Bumper) Version(name string) (semver.Version, error) {
	comp, err := b.cfg.Component(name)
	if err != nil {
		return semver.Version{}, err
	}

	v, err := sourcefile.Read(b.fs, comp.Source, comp.Key)
	if err != nil {
		return semver.Version{}, fmt.Errorf("component %q: %w", name, err)
	}
	return v, nil
}

// Bump runs the whole release flow: read current versions, classify the
// commit messages, compute next versions, persist them and regenerate the
// dependent manifests. Ordering is strict; any failure before manifest sync
// aborts with nothing further written. Manifest sync and journal failures
// are downgraded to warnings because the authoritative constants were
// already updated.
func (b *Bumper) Bump(ctx context.Context, messages []string, t semver.ReleaseType) (*Result, error) {
	current, err := b.Current()
	if err != nil {
		return nil, err
	}

	commitList := make([]commits.Commit, 0, len(messages))
	for _, m := range messages {
		commitList = append(commitList, commits.Commit{Message: m})
	}
	decision := commits.Classify(commitList)

	updated, changes, err := Apply(current, decision, t)
	if err != nil {
		return nil, err
	}

	if err := b.persist(changes); err != nil {
		return nil, err
	}

	primary, err := updated.Primary()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Decision: decision,
		Versions: updated,
		Changes:  changes,
		Primary:  primary,
	}

	result.Warnings = append(result.Warnings, b.syncManifests(updated)...)

	if b.recorder != nil && len(changes) > 0 {
		if err := b.recorder.Record(ctx, t, changes); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to journal changes: %v", err))
		}
	}

	for _, c := range changes {
		log.Info().
			Str("component", c.Component).
			Str("from", c.From.String()).
			Str("to", c.To.String()).
			Str("release_type", string(t)).
			Msg("bumped component version")
	}

	return result, nil
}

// persist writes every changed source constant, then the packaging manifest.
// The first failure aborts before any later dependent step runs.
func (b *Bumper) persist(changes []Change) error {
	for _, c := range changes {
		comp, err := b.cfg.Component(c.Component)
		if err != nil {
			return err
		}
		if err := sourcefile.Write(b.fs, comp.Source, comp.Key, c.To); err != nil {
			return fmt.Errorf("component %q: %w", c.Component, err)
		}
	}

	for _, c := range changes {
		if c.Component != config.Primary {
			continue
		}
		if err := sourcefile.Write(b.fs, b.cfg.Pyproject, "version", c.To); err != nil {
			return fmt.Errorf("packaging manifest: %w", err)
		}
	}

	return nil
}

// Sync regenerates every configured process-manager manifest from the
// current source versions. Used standalone by the sync command and by the
// supervisor's startup sequence.
func (b *Bumper) Sync() ([]string, error) {
	versions, err := b.Current()
	if err != nil {
		return nil, err
	}

	var synced []string
	for _, name := range config.ComponentNames() {
		comp, err := b.cfg.Component(name)
		if err != nil {
			return synced, err
		}
		if comp.Manifest == "" {
			continue
		}
		if err := manifest.WriteApp(b.fs, comp.Manifest, name, versions[name]); err != nil {
			return synced, fmt.Errorf("component %q: %w", name, err)
		}
		synced = append(synced, comp.Manifest)
	}
	return synced, nil
}

// syncManifests is the bump-time variant of Sync: per-file failures become
// warnings instead of errors.
func (b *Bumper) syncManifests(versions Versions) []string {
	var warnings []string
	for _, name := range config.ComponentNames() {
		comp, err := b.cfg.Component(name)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		if comp.Manifest == "" {
			continue
		}
		if err := manifest.WriteApp(b.fs, comp.Manifest, name, versions[name]); err != nil {
			log.Warn().Err(err).Str("component", name).Msg("manifest sync failed")
			warnings = append(warnings, fmt.Sprintf("manifest sync for %q failed: %v", name, err))
		}
	}
	return warnings
}
