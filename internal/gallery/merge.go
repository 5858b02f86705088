package gallery

// Merge combines the three image sources in presentation order: the static
// demo images first, then the live feed, then locally queued uploads. The
// live subset is expected pre-sorted (newest first) by the aggregator.
// Duplicate URLs across sources appear once, at their first position.
func Merge(static, live, local []string) []string {
	seen := make(map[string]bool, len(static)+len(live)+len(local))
	var out []string
	for _, src := range [][]string{static, live, local} {
		for _, url := range src {
			if url == "" || seen[url] {
				continue
			}
			seen[url] = true
			out = append(out, url)
		}
	}
	return out
}
