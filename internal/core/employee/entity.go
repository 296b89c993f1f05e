package employee

// Employee は従業員エンティティです。
// DivisionID / JobTitleID は「現在の」所属を表し、従業員 1 人につき各 1 件までです。
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	SSN       string
	Email     string

	// 以下は現在の所属から引き当てた表示用の参照情報です。未所属の場合は nil です。
	DivisionID   *int64
	DivisionName *string
	JobTitleID   *int64
	JobTitleName *string
}
