package jobtitle

// JobTitle は職位エンティティです。参照データであり、ほとんど変更されません。
type JobTitle struct {
	ID    int64
	Title string
}
