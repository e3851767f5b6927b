package orders

// Source — канал, по которому пришёл заказ.
type Source string

const (
	// SourceWebApp — mini-app внутри Telegram (web_app_data).
	SourceWebApp Source = "webapp"
	// SourceSite — POST /order с сайта.
	SourceSite Source = "site"
)
