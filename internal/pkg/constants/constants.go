package constants

// viper keys
const (
	ViperHTTPAddr     = "http.addr"
	ViperDatabaseDSN  = "database.dsn"
	ViperWhoDataDir   = "who_data.dir"
	ViperUploadDir    = "uploads.dir"
	ViperFeedIndexURL = "feeds.index_url"
	ViperFeedCronSpec = "feeds.cron"
	ViperSecretKey    = "auth.secret"
	ViperLogLevel     = "log.level"
)

const (
	CookieKeyAuthToken    = "auth_token"
	CookieKeySecretToken  = "secret_token"
	CookieKeyRefreshToken = "refresh_token"

	CtxKeyUserID = "user_id"
)
