package api

// Services bundles the per-resource endpoint groups over one shared
// client, mirroring how the backend groups its routes.
type Services struct {
	Auth         *AuthService
	Items        *ItemsService
	Categories   *CategoriesService
	Transactions *TransactionsService
	Requests     *RequestsService
	Users        *UsersService
	Logs         *LogsService
	Reports      *ReportsService
}

func NewServices(client *Client) *Services {
	return &Services{
		Auth:         &AuthService{client: client},
		Items:        &ItemsService{client: client},
		Categories:   &CategoriesService{client: client},
		Transactions: &TransactionsService{client: client},
		Requests:     &RequestsService{client: client},
		Users:        &UsersService{client: client},
		Logs:         &LogsService{client: client},
		Reports:      &ReportsService{client: client},
	}
}
