package models

// IndexStats summarizes the archive contents.
type IndexStats struct {
	Instances int64 `json:"instances"`
	Studies   int64 `json:"studies"`
	Series    int64 `json:"series"`
}

// IngestRequest asks the archive to import a directory tree.
type IngestRequest struct {
	Path string `json:"path"`
}

// IngestResponse reports how many files were newly imported.
type IngestResponse struct {
	Count int `json:"count"`
}
