// Package keypadv1 — контракт gRPC-сервиса keypad.v1.KeypadService: сообщения, дескриптор сервиса и клиент.
//
// Сообщения передаются JSON-кодеком (content-subtype "json"), поэтому это обычные Go-структуры.
// Числа истории — строки: Infinity и NaN в JSON числом не передать.
package keypadv1

// PressRequest — нажатия клавиш в сессии, по порядку.
type PressRequest struct {
	SessionId string   `json:"session_id"`
	Keys      []string `json:"keys"`
}

func (r *PressRequest) GetSessionId() string {
	if r == nil {
		return ""
	}
	return r.SessionId
}

func (r *PressRequest) GetKeys() []string {
	if r == nil {
		return nil
	}
	return r.Keys
}

// DisplayRequest — запрос текущего состояния сессии.
type DisplayRequest struct {
	SessionId string `json:"session_id"`
}

func (r *DisplayRequest) GetSessionId() string {
	if r == nil {
		return ""
	}
	return r.SessionId
}

// StateResponse — состояние дисплея после Press или Display.
type StateResponse struct {
	SessionId string `json:"session_id"`
	Display   string `json:"display"`
	Operator  string `json:"operator"`
	Waiting   bool   `json:"waiting"`
}

// ResetRequest — сброс сессии.
type ResetRequest struct {
	SessionId string `json:"session_id"`
}

func (r *ResetRequest) GetSessionId() string {
	if r == nil {
		return ""
	}
	return r.SessionId
}

type ResetResponse struct{}

type HistoryRequest struct{}

// HistoryItem — одна разрешённая операция.
type HistoryItem struct {
	Id                int64  `json:"id"`
	SessionId         string `json:"session_id"`
	Number1           string `json:"number1"`
	Number2           string `json:"number2"`
	Operation         string `json:"operation"`
	Result            string `json:"result"`
	Display           string `json:"display"`
	TimestampUnixNano int64  `json:"timestamp_unix_nano"`
}

type HistoryResponse struct {
	Items []*HistoryItem `json:"items"`
}
