package vehicle

// Model is one brand/model/year variant. The ID is assigned by the catalog.
type Model struct {
	ID    string
	Brand string
	Model string
	Year  int
}
