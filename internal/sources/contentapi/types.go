package contentapi

// searchRequest is the body POSTed for every page.
type searchRequest struct {
	Type       string `json:"type"`
	Community  string `json:"community"`
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
}

// searchResponse is one page of content groupings.
type searchResponse struct {
	ContentGroupings []contentGrouping `json:"contentGroupings"`
}

type contentGrouping struct {
	ContentList []contentItem `json:"contentList"`
}

// contentItem carries the fields used from a listed episode; everything else is ignored.
type contentItem struct {
	ID        string `json:"id"`
	ShortName string `json:"short_name"`
}
