package domain

// AccountFilter narrows chart-of-accounts listings. Zero values mean
// no restriction.
type AccountFilter struct {
	Type       AccountType
	Status     AccountStatus
	ParentCode string
	Limit      int
	Offset     int
}

// VoucherFilter narrows voucher listings. Zero values mean no
// restriction.
type VoucherFilter struct {
	Status    VoucherStatus
	Period    Period
	CreatedBy string
	Limit     int
	Offset    int
}
