package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// InsecureCookieSecret 是本地开发用的兜底密钥,线上环境禁止使用。
const InsecureCookieSecret = "dev-only-unsafe"

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr           string
	Port                 string
	DatastoreURL         string
	DatastoreKey         string
	CookieSecret         string
	CookieSecretInsecure bool
	GinMode              string
	TemplateGlob         string
	StaticDir            string
	Links                ExternalLinks
}

// ExternalLinks 保存站外跳转与内嵌资源地址。
type ExternalLinks struct {
	Telegram       string
	GitHub         string
	Resume         string
	ABTestRepo     string
	DashboardEmbed string
	DashboardFile  string
}

// Load 从环境变量读取应用配置。数据库地址与访问密钥是必填项,
// 缺失时返回错误并由调用方终止启动;Cookie 密钥缺失则回退到开发密钥并打上标记。
func Load() (AppConfig, error) {
	datastoreURL := strings.TrimSpace(os.Getenv("DATASTORE_URL"))
	if datastoreURL == "" {
		return AppConfig{}, errors.New("DATASTORE_URL is not set; point it at the hosted database")
	}

	datastoreKey := strings.TrimSpace(os.Getenv("DATASTORE_KEY"))
	if datastoreKey == "" {
		return AppConfig{}, errors.New("DATASTORE_KEY is not set; provide the datastore access key")
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	cookieSecret := strings.TrimSpace(os.Getenv("COOKIE_SECRET"))
	cookieSecretInsecure := false
	if cookieSecret == "" {
		cookieSecret = InsecureCookieSecret
		cookieSecretInsecure = true
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	return AppConfig{
		ListenAddr:           listenAddr,
		Port:                 port,
		DatastoreURL:         datastoreURL,
		DatastoreKey:         datastoreKey,
		CookieSecret:         cookieSecret,
		CookieSecretInsecure: cookieSecretInsecure,
		GinMode:              ginMode,
		TemplateGlob:         envOr("TEMPLATE_GLOB", "web/template/*.html"),
		StaticDir:            envOr("STATIC_DIR", "web/static"),
		Links: ExternalLinks{
			Telegram:       envOr("TELEGRAM_URL", "https://t.me/cldmatv"),
			GitHub:         envOr("GITHUB_URL", "https://github.com/MSSAS"),
			Resume:         envOr("RESUME_URL", "https://sochi.hh.ru/resume/b872d5b3ff0f3adc440039ed1f786c7a745332"),
			ABTestRepo:     envOr("ABTEST_REPO_URL", "https://github.com/MSSAS/AB-test_payment"),
			DashboardEmbed: envOr("DASHBOARD_EMBED_URL", "https://datalens.yandex/8ddgy8naysj4u"),
			DashboardFile:  envOr("DASHBOARD_FILE_URL", "https://drive.google.com/drive/folders/1zlu_QaB6J96GlohndvQwuAnbmle2USGo?usp=sharing"),
		},
	}, nil
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
