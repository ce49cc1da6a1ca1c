package db

import "gorm.io/gorm"

const defaultHomeContent = `Помогаю принимать решения на данных: быстрые дашборды, A/B-тесты и понятные отчёты.
Фокус на скорости, прозрачности и измеримом бизнес-эффекте.

## Обо мне

- 🎓 4 курс Сочинского госуниверситета («Цифровые технологии в аналитической деятельности»).
- 🧰 Стек: **SQL** (ClickHouse, PostgreSQL), **Python** (pandas, plotly, pingouin), **BI** (DataLens, Power BI, Tableau), **Airflow**.
- 🧪 Продуктовые метрики и эксперименты: **CR, ARPU/ARPPU, Retention, Stickiness**, t-test/χ², доверительные интервалы.
- 📊 Для продавца **Wildberries** собрал витрину и дашборд в DataLens — снизил время анализа с ~2 часов до **15 минут**.
- 🚀 Ищу стажировку/джуниор-роль аналитика. Быстро вхожу в домен, документирую гипотезы и результаты.
`

const defaultABTestContent = `## Методология

- 📊 Метрики: CR, ARPU.
- 📐 Проверка нормальности; t-test и χ²-тест.
- 📈 Интерпретация p-value и доверительных интервалов.

## Результаты (пример)

- **A (контроль):** CR = 2.1%, ARPU = 1500 ₽
- **B (новая механика):** CR = 2.3%, ARPU = 1550 ₽
- **p-value (t-test ARPU):** 0.03 (< 0.05) — статистически значимо
- **Итог:** новую механику — рекомендовано к внедрению
`

// seedContent 在内容页或联系方式缺失时写入默认值,已有数据保持不动。
func seedContent(gdb *gorm.DB) error {
	pages := []Page{
		{Slug: "home", Title: "Портфолио Матвея Спицына", Content: defaultHomeContent},
		{Slug: "ab-test", Title: "A/B-тест новой механики оплаты", Content: defaultABTestContent},
	}

	for _, page := range pages {
		var count int64
		if err := gdb.Model(&Page{}).Where("slug = ?", page.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := gdb.Create(&page).Error; err != nil {
			return err
		}
	}

	var contacts int64
	if err := gdb.Model(&ProfileContact{}).Count(&contacts).Error; err != nil {
		return err
	}
	if contacts == 0 {
		defaults := []ProfileContact{
			{Platform: "phone", Label: "+7 (938) 425-24-03", Sort: 1},
			{Platform: "email", Label: "sp1tsyn1@yandex.ru", Link: "mailto:sp1tsyn1@yandex.ru", Sort: 2},
			{Platform: "github", Label: "github.com/MSSAS", Link: "https://github.com/MSSAS", Sort: 3},
			{Platform: "telegram", Label: "@cldmatv", Link: "https://t.me/cldmatv", Sort: 4},
		}
		if err := gdb.Create(&defaults).Error; err != nil {
			return err
		}
	}

	return nil
}
