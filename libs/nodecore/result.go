package nodecore

// ProcessResult summarizes the outcome of one Process call. It is built
// fresh per call and never mutated afterwards.
type ProcessResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    *ResultData `json:"data"`
}

// ResultData is the typed payload carried by a ProcessResult.
type ResultData struct {
	Length      int    `json:"length"`
	ProcessedAt string `json:"processed_at"`
	ItemNumber  int    `json:"item_number"`
}
