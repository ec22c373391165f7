package store

// detailsResponse mirrors the part of the store details payload the client reads.
// Every level is a pointer so a missing level can be told apart from a zero value.
type detailsResponse struct {
	DocV2 *docV2 `json:"docV2"`
}

type docV2 struct {
	DocID   string      `json:"docid"`
	Title   string      `json:"title"`
	Creator string      `json:"creator"`
	Details *docDetails `json:"details"`
}

type docDetails struct {
	AppDetails *appDetails `json:"appDetails"`
}

type appDetails struct {
	VersionCode *int64 `json:"versionCode"`
}
