// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "tabebui"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultDatabaseDriver = "postgres"
	DefaultTimezone       = "Asia/Tokyo"
	DefaultMaxPerPage     = 100

	// 旧実装で固定されていたユーザー
	DefaultUserID = "00000000-0000-0000-0000-000000000001"
)

// チャット (Gemini) 関連
const (
	DefaultChatProvider     = "gemini"
	DefaultChatModel        = "gemini-1.5-flash"
	DefaultChatTemperature  = 0.7
	DefaultChatTimeout      = 20 * time.Second
	DefaultChatHistoryLimit = 10
	DefaultChatSystemPrompt = "あなたは「たべぶいコンシェルジュ」です。牛・豚・鳥の部位に詳しいグルメガイドとして、" +
		"ユーザーの部位制覇状況を踏まえて、次に食べるべき部位やお店選びのコツを日本語で簡潔に提案してください。"
)
