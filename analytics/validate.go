package analytics

// validate checks the top-level shape of the inputs. It is the only stage
// that can fail; no accumulation happens after a rejection. Each violation
// carries a distinct message naming the offending field.
func validate(data *Dataset, opts Options) error {
	if data == nil {
		return &ValidationError{Field: "data", Reason: "a dataset with sellers, products and purchase_records is required"}
	}
	if len(data.Sellers) == 0 {
		return &ValidationError{Field: "sellers", Reason: "must be a non-empty collection"}
	}
	if len(data.Products) == 0 {
		return &ValidationError{Field: "products", Reason: "must be a non-empty collection"}
	}
	if len(data.PurchaseRecords) == 0 {
		return &ValidationError{Field: "purchase_records", Reason: "must be a non-empty collection"}
	}
	if opts.CalculateRevenue == nil {
		return &ValidationError{Field: "calculateRevenue", Reason: "a revenue strategy is required"}
	}
	if opts.CalculateBonus == nil {
		return &ValidationError{Field: "calculateBonus", Reason: "a bonus strategy is required"}
	}
	return nil
}
