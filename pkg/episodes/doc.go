// Package episodes implements the episode short-code mapping: the ordering
// key extracted from episode names, the two-symbol base-62 short codes and
// their first-fit allocator, merging freshly fetched episodes into an
// existing mapping, and the tab-separated mapping file.
//
// A short code, once handed to an episode ID, never changes while that ID
// stays in the mapping. Merging the same batch twice is a no-op.
//
//	store := episodes.NewStore("episode_names.txt")
//	existing, _, err := store.Load()
//	if err != nil {
//		return err
//	}
//	merged, result, err := episodes.Merge(existing, batch)
//	if err != nil {
//		return err // nothing written on exhaustion
//	}
//	log.Printf("added %d", len(result.Added))
//	return store.Save(merged)
package episodes
