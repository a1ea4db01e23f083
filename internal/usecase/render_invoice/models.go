package render_invoice

// Hotel реквизиты в шапке счета
type Hotel struct {
	Name           string
	Address        string
	TaxID          string
	Phone          string
	CurrencySymbol string
}

// Request запрос печатной формы
type Request struct {
	ReservationID int64
}

// Response готовый PDF
type Response struct {
	FileName string
	Content  []byte
}
