package sync

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/catein/episodemap/pkg/episodes"
	"github.com/catein/episodemap/pkg/errors"
	"github.com/catein/episodemap/pkg/logging"
)

// Fetcher retrieves every item of one category.
type Fetcher interface {
	Fetch(ctx context.Context, category Category) (episodes.Batch, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, category Category) (episodes.Batch, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, category Category) (episodes.Batch, error) {
	return f(ctx, category)
}

// Run fetches all categories, merges them into the mapping held by store and
// saves the result. Any fetch failure aborts the run before the mapping file
// is read or written.
func Run(ctx context.Context, fetcher Fetcher, store *episodes.Store, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	options := Defaults().Apply(opts...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	if options.RunID == "" {
		options.RunID = uuid.NewString()
	}
	if options.Logger != nil {
		ctx = logging.WithLogger(ctx, options.Logger)
	}
	ctx = logging.WithRunID(ctx, options.RunID)

	result := &Result{
		RunID:       options.RunID,
		MappingFile: store.Path(),
		DryRun:      options.DryRun,
	}

	// Step 1: fetch every category before touching the mapping file
	start := time.Now()
	fetchCtx := logging.WithOperation(ctx, "fetch")
	combined, err := fetchAll(fetchCtx, fetcher, options.Categories, result)
	if err != nil {
		return nil, err
	}
	result.Combined = len(combined)
	logging.FromContext(fetchCtx).Info().
		Int("combined", result.Combined).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched all categories")

	// Step 2: load the existing mapping
	logger := logging.FromContext(logging.WithOperation(ctx, "load"))
	existing, stats, err := store.Load()
	if err != nil {
		return nil, err
	}
	result.Load = stats
	if stats.Missing {
		logger.Info().Str("path", store.Path()).Msg("No mapping file yet, starting empty")
	}

	// Step 3: merge
	logger = logging.FromContext(logging.WithOperation(ctx, "merge"))
	merged, mr, err := episodes.Merge(existing, combined)
	if err != nil {
		return nil, err
	}
	result.Added = mr.Added
	result.Renamed = mr.Renamed
	result.Unchanged = mr.Unchanged
	result.Ignored = mr.Ignored
	result.Total = merged.Len()

	if mr.Ignored > 0 {
		logger.Warn().Int("ignored", mr.Ignored).Msg("Ignored fetched items without an ID")
	}
	for _, r := range mr.Added {
		logger.Info().
			Str("code", string(r.Code)).
			Str("id", r.ID).
			Str("name", r.Name).
			Msg("Added")
	}
	for _, r := range mr.Renamed {
		logger.Debug().
			Str("code", string(r.Code)).
			Str("id", r.ID).
			Str("name", r.Name).
			Msg("Renamed")
	}

	// Step 4: save unless dry run
	logger = logging.FromContext(logging.WithOperation(ctx, "save"))
	if options.DryRun {
		logger.Info().Bool("dry_run", true).Msg("Dry run completed - mapping file not written")
		return result, nil
	}
	if err := store.Save(merged); err != nil {
		return nil, err
	}
	logger.Info().
		Int("total", result.Total).
		Str("path", store.Path()).
		Msg("Saved mapping")

	return result, nil
}

// fetchAll fetches the categories in order. Later categories overwrite the
// names of items already seen.
func fetchAll(ctx context.Context, fetcher Fetcher, categories []Category, result *Result) (episodes.Batch, error) {
	combined := make(episodes.Batch)
	for _, category := range categories {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapFetch(category.Name, 0, errors.ErrCanceled)
		}

		catCtx := logging.WithCategory(ctx, category.Name)
		batch, err := fetcher.Fetch(catCtx, category)
		if err != nil {
			logging.FromContext(catCtx).Error().Err(err).Msg("Fetch failed, aborting")
			if errors.IsFetchFailed(err) {
				return nil, err
			}
			return nil, errors.WrapFetch(category.Name, 0, err)
		}
		if len(batch) == 0 {
			return nil, errors.WrapFetch(category.Name, 0, errors.ErrEmptyCategory)
		}

		logging.FromContext(catCtx).Info().Int("found", len(batch)).Msg("Fetched category")
		result.Categories = append(result.Categories, CategoryResult{Name: category.Name, Fetched: len(batch)})
		for id, name := range batch {
			combined[id] = name
		}
	}
	return combined, nil
}
