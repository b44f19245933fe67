package upstream

import (
	"encoding/json"
	"fmt"

	"github.com/Akimtsev/ops_console/internal/domain"
)

// Бэкенд отвечает двумя формами конверта успеха:
//   - текущая:  {"success": true, "message": "...", "data": {...}}
//   - легаси:   {"message": true, "error": {...}} — флаг в message,
//     полезная нагрузка лежит под error.
//
// Обе живые (две версии бэкенда); нормализуем здесь, дальше по слою
// ходит только полезная нагрузка. Всё, что не совпало ни с одной формой,
// считается ErrBadEnvelope — без попыток угадать.
type envelope struct {
	Success bool            `json:"success"`
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// decodeEnvelope — нормализация ответа в полезную нагрузку.
func decodeEnvelope(body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadEnvelope, err)
	}

	// Легаси-форма: message — булев флаг, а не строка.
	var legacyFlag bool
	if len(env.Message) > 0 && json.Unmarshal(env.Message, &legacyFlag) == nil {
		if !legacyFlag {
			return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, errorText(&env))
		}
		if !hasPayload(env.Error) {
			return nil, fmt.Errorf("%w: legacy envelope without payload", domain.ErrBadEnvelope)
		}
		return env.Error, nil
	}

	// Текущая форма: success + data.
	if env.Success {
		if !hasPayload(env.Data) {
			return nil, fmt.Errorf("%w: success without payload", domain.ErrBadEnvelope)
		}
		return env.Data, nil
	}

	if msg := messageText(&env); msg != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, msg)
	}
	return nil, fmt.Errorf("%w: neither success form matched", domain.ErrBadEnvelope)
}

func hasPayload(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func messageText(env *envelope) string {
	var s string
	if len(env.Message) > 0 && json.Unmarshal(env.Message, &s) == nil {
		return s
	}
	return ""
}

// errorText — текст отказа легаси-формы: error там может быть строкой.
func errorText(env *envelope) string {
	var s string
	if len(env.Error) > 0 && json.Unmarshal(env.Error, &s) == nil && s != "" {
		return s
	}
	return "request failed"
}
