package metadata

// Merge folds partial records left to right with set-if-present semantics:
// a later record overwrites every field it supplies and leaves untouched
// every field it does not. The caller's ordering is therefore the conflict
// policy: the last source in the list that supplies a field wins it.
func Merge(results []Result) PartialRecord {
	var merged PartialRecord
	for _, r := range results {
		if r.Empty() {
			continue
		}
		p := r.Partial
		if p.Title != nil {
			merged.Title = p.Title
		}
		if len(p.Authors) > 0 {
			merged.Authors = p.Authors
		}
		if p.Description != nil {
			merged.Description = p.Description
		}
		if len(p.Categories) > 0 {
			merged.Categories = p.Categories
		}
		if p.AverageRating != nil {
			merged.AverageRating = p.AverageRating
		}
		if p.PublishedDate != nil {
			merged.PublishedDate = p.PublishedDate
		}
		if p.PageCount != nil {
			merged.PageCount = p.PageCount
		}
		if p.PreviewLink != nil {
			merged.PreviewLink = p.PreviewLink
		}
		if len(p.Publishers) > 0 {
			merged.Publishers = p.Publishers
		}
		if p.CoverURL != nil {
			merged.CoverURL = p.CoverURL
		}
		if p.Price != nil {
			merged.Price = p.Price
		}
		if p.InStock != nil {
			merged.InStock = p.InStock
		}
	}
	return merged
}
