package importer

// Record is one employee-shaped row from an external source, normalized
// before reconciliation. Pointer fields distinguish a value the source
// supplied from one it omitted: omitted fields never overwrite stored
// data on update and fall back to zero values on create.
type Record struct {
	FullName    string   `json:"full_name"`
	Position    *string  `json:"position"`
	BaseSalary  *float64 `json:"base_salary"`
	Department  *string  `json:"department"`
	TaxID       *string  `json:"tax_id"`
	BankAccount *string  `json:"bank_account"`
}

// Options are the two independent merge policies. Both false means the
// batch is parsed and counted but nothing is written.
type Options struct {
	UpdateExisting bool
	CreateMissing  bool
}

// Result reports what the reconciliation changed.
type Result struct {
	CreatedCount int `json:"created_count"`
	UpdatedCount int `json:"updated_count"`
}
