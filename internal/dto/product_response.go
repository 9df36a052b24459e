package dto

type BulkInsertResponse struct {
	InsertedCount     int      `json:"inserted_count"`
	SkippedProductIDs []string `json:"skipped_product_ids"`
}
