package itunes

// UniqueArtwork returns the first limit distinct URLs in input order.
// Comparison is exact: URLs differing only in host case count as distinct.
// Empty URLs are skipped.
func UniqueArtwork(urls []string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	seen := make(map[string]struct{}, limit)
	unique := make([]string, 0, limit)
	for _, u := range urls {
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		unique = append(unique, u)
		if len(unique) == limit {
			break
		}
	}
	return unique
}
