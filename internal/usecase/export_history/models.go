package export_history

import "github.com/m04kA/SMC-HotelService/pkg/types"

// Request необязательный период по датам проживания
type Request struct {
	From *types.Date
	To   *types.Date
}

// Response готовый XLSX файл
type Response struct {
	FileName string
	Content  []byte
}
