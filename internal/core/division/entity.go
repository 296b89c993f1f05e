package division

// Division は部門エンティティです。参照データであり、ほとんど変更されません。
type Division struct {
	ID   int64
	Name string
}
