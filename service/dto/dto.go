package dto

type Preview struct {
	Id      string  `json:"id"`
	Name    *string `json:"name"`
	Message string  `json:"message"`
}

type DryRun struct {
	Count    int       `json:"count"`
	Previews []Preview `json:"previews"`
}

type Detail struct {
	Id     string  `json:"id"`
	Name   *string `json:"name"`
	Status string  `json:"status"`
	Raw    string  `json:"raw,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Summary reports one full send pass. Sent counts recipients attempted, not
// deliveries that succeeded; per-recipient outcomes live in Details.
type Summary struct {
	Sent    int      `json:"sent"`
	Details []Detail `json:"details"`
}

type EnvCheck struct {
	DatabaseBound       bool `json:"database_bound"`
	TelegramBotTokenSet bool `json:"telegram_bot_token_set"`
	TelegramChatIdSet   bool `json:"telegram_chat_id_set"`
}
