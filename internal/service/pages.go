package service

// 站点页面的规范名称,与 events.page 和 durations.page 中存储的值一致。
const (
	PageHome       = "Главная"
	PageDashboards = "Дашборды"
	PageABTests    = "A/B-тесты"
	PageAnalytics  = "Аналитика сайта"
	PageContacts   = "Контакты"
)

// KnownPages 按导航顺序列出全部页面。
var KnownPages = []string{PageHome, PageDashboards, PageABTests, PageAnalytics, PageContacts}
